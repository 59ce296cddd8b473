package rpc

// User is the public view of an account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

type Transaction struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
	Date   string `json:"date"`
}

type Member struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UserID     string `json:"userId,omitempty"`
	RentPaid   bool   `json:"rentPaid"`
	RentPaidAt int64  `json:"rentPaidAt,omitempty"`
}

type Group struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	MonthlyContribution int64    `json:"monthlyContribution"`
	OwnerID             string   `json:"ownerId"`
	Members             []Member `json:"members"`
	CreatedAt           int64    `json:"createdAt"`
	CurrentMonth        string   `json:"currentMonth"`
}

type LedgerEntry struct {
	ID           string   `json:"id"`
	GroupID      string   `json:"groupId"`
	Title        string   `json:"title"`
	Amount       int64    `json:"amount"`
	PaidBy       string   `json:"paidBy"`
	SplitBetween []string `json:"splitBetween"`
	Kind         string   `json:"kind"`
	Date         string   `json:"date"`
	CreatedAt    int64    `json:"createdAt"`
}

// MemberBalance is one row of a balance report. Balance may be fractional.
type MemberBalance struct {
	MemberID  string  `json:"memberId"`
	Name      string  `json:"name"`
	TotalPaid int64   `json:"totalPaid"`
	Balance   float64 `json:"balance"`
}

// Transfer is a suggested settlement payment. From and To are member IDs.
type Transfer struct {
	From     string `json:"from"`
	To       string `json:"to"`
	FromName string `json:"fromName"`
	ToName   string `json:"toName"`
	Amount   int64  `json:"amount"`
}

// Auth

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}

// Personal transactions

type ListTransactionsRequest struct{}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type CreateTransactionRequest struct {
	Title  string `json:"title"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
	// Date defaults to today (YYYY-MM-DD).
	Date string `json:"date,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type UpdateTransactionRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

type UpdateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	ID string `json:"id"`
}

type DeleteTransactionResponse struct{}

type ClearTransactionsRequest struct{}

type ClearTransactionsResponse struct {
	Deleted int64 `json:"deleted"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Balance  int64 `json:"balance"`
}

// Groups

type NewMember struct {
	Name   string `json:"name"`
	UserID string `json:"userId,omitempty"`
}

type CreateGroupRequest struct {
	Name                string      `json:"name"`
	MonthlyContribution int64       `json:"monthlyContribution"`
	Members             []NewMember `json:"members"`
}

type CreateGroupResponse struct {
	Group Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []Group `json:"groups"`
}

// UpdateGroupRequest changes only the fields that are set.
type UpdateGroupRequest struct {
	GroupID             string `json:"groupId"`
	Name                string `json:"name,omitempty"`
	MonthlyContribution *int64 `json:"monthlyContribution,omitempty"`
}

type UpdateGroupResponse struct {
	Group Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId"`
}

type DeleteGroupResponse struct{}

type AddMemberRequest struct {
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
	UserID  string `json:"userId,omitempty"`
}

type AddMemberResponse struct {
	Member Member `json:"member"`
}

type RemoveMemberRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
}

type RemoveMemberResponse struct{}

type RenameMemberRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
}

type RenameMemberResponse struct {
	Member Member `json:"member"`
}

type SetRentPaidRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
	RentPaid bool   `json:"rentPaid"`
}

type SetRentPaidResponse struct {
	Member Member `json:"member"`
}

type ResetRentRequest struct {
	GroupID string `json:"groupId"`
}

type ResetRentResponse struct {
	Group Group `json:"group"`
}

type ResetBalancesRequest struct {
	GroupID string `json:"groupId"`
}

type ResetBalancesResponse struct{}

// Ledger

type ListEntriesRequest struct {
	GroupID string `json:"groupId"`
}

type ListEntriesResponse struct {
	Entries []LedgerEntry `json:"entries"`
}

// AddExpenseRequest records a shared expense. SplitBetween defaults to every
// member and Kind to "Expense".
type AddExpenseRequest struct {
	GroupID      string   `json:"groupId"`
	Title        string   `json:"title"`
	Amount       int64    `json:"amount"`
	PaidBy       string   `json:"paidBy"`
	SplitBetween []string `json:"splitBetween,omitempty"`
	Kind         string   `json:"kind,omitempty"`
	Date         string   `json:"date,omitempty"`
}

type AddExpenseResponse struct {
	Entry LedgerEntry `json:"entry"`
}

type DeleteEntryRequest struct {
	GroupID string `json:"groupId"`
	EntryID string `json:"entryId"`
}

type DeleteEntryResponse struct{}

type RecordPaymentRequest struct {
	GroupID string `json:"groupId"`
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  int64  `json:"amount"`
	Note    string `json:"note,omitempty"`
}

type RecordPaymentResponse struct {
	Entry LedgerEntry `json:"entry"`
}

type AddMoneyRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
	Amount   int64  `json:"amount"`
	Note     string `json:"note,omitempty"`
}

type AddMoneyResponse struct {
	Entry LedgerEntry `json:"entry"`
}

type GetBalancesRequest struct {
	GroupID string `json:"groupId"`
}

// GetBalancesResponse is the balance report for a group. Settlement From and
// To identify members by ID, which survives renames; FromName and ToName carry
// the display names current when the report was built.
type GetBalancesResponse struct {
	Balances            []MemberBalance `json:"balances"`
	Settlements         []Transfer      `json:"settlements"`
	TotalExpenses       int64           `json:"totalExpenses"`
	TotalMembers        int             `json:"totalMembers"`
	MonthlyContribution int64           `json:"monthlyContribution"`
}
