package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Fully-qualified service names.
const (
	AuthServiceName        = "moneymanager.v1.AuthService"
	TransactionServiceName = "moneymanager.v1.TransactionService"
	GroupServiceName       = "moneymanager.v1.GroupService"
	LedgerServiceName      = "moneymanager.v1.LedgerService"
)

// Procedure paths, in the form "/<service>/<method>".
const (
	AuthServiceRegisterProcedure                 = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure                    = "/" + AuthServiceName + "/Login"
	AuthServiceLogoutProcedure                   = "/" + AuthServiceName + "/Logout"
	AuthServiceGetCurrentUserProcedure           = "/" + AuthServiceName + "/GetCurrentUser"
	TransactionServiceListTransactionsProcedure  = "/" + TransactionServiceName + "/ListTransactions"
	TransactionServiceCreateTransactionProcedure = "/" + TransactionServiceName + "/CreateTransaction"
	TransactionServiceUpdateTransactionProcedure = "/" + TransactionServiceName + "/UpdateTransaction"
	TransactionServiceDeleteTransactionProcedure = "/" + TransactionServiceName + "/DeleteTransaction"
	TransactionServiceClearTransactionsProcedure = "/" + TransactionServiceName + "/ClearTransactions"
	TransactionServiceGetSummaryProcedure        = "/" + TransactionServiceName + "/GetSummary"
	GroupServiceCreateGroupProcedure             = "/" + GroupServiceName + "/CreateGroup"
	GroupServiceGetGroupProcedure                = "/" + GroupServiceName + "/GetGroup"
	GroupServiceListGroupsProcedure              = "/" + GroupServiceName + "/ListGroups"
	GroupServiceUpdateGroupProcedure             = "/" + GroupServiceName + "/UpdateGroup"
	GroupServiceDeleteGroupProcedure             = "/" + GroupServiceName + "/DeleteGroup"
	GroupServiceAddMemberProcedure               = "/" + GroupServiceName + "/AddMember"
	GroupServiceRemoveMemberProcedure            = "/" + GroupServiceName + "/RemoveMember"
	GroupServiceRenameMemberProcedure            = "/" + GroupServiceName + "/RenameMember"
	GroupServiceSetRentPaidProcedure             = "/" + GroupServiceName + "/SetRentPaid"
	GroupServiceResetRentProcedure               = "/" + GroupServiceName + "/ResetRent"
	GroupServiceResetBalancesProcedure           = "/" + GroupServiceName + "/ResetBalances"
	LedgerServiceListEntriesProcedure            = "/" + LedgerServiceName + "/ListEntries"
	LedgerServiceAddExpenseProcedure             = "/" + LedgerServiceName + "/AddExpense"
	LedgerServiceDeleteEntryProcedure            = "/" + LedgerServiceName + "/DeleteEntry"
	LedgerServiceRecordPaymentProcedure          = "/" + LedgerServiceName + "/RecordPayment"
	LedgerServiceAddMoneyProcedure               = "/" + LedgerServiceName + "/AddMoney"
	LedgerServiceGetBalancesProcedure            = "/" + LedgerServiceName + "/GetBalances"
)

// AuthServiceHandler is implemented by the server side of the AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	Logout(context.Context, *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for every AuthService procedure.
// It returns the path prefix to mount the handler on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceLogoutProcedure, connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...))
	mux.Handle(AuthServiceGetCurrentUserProcedure, connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...))
	return "/" + AuthServiceName + "/", mux
}

// AuthServiceClient is a typed client for the AuthService.
type AuthServiceClient struct {
	register       *connect.Client[RegisterRequest, RegisterResponse]
	login          *connect.Client[LoginRequest, LoginResponse]
	logout         *connect.Client[LogoutRequest, LogoutResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

// NewAuthServiceClient creates a client for the AuthService served at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register:       connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		logout:         connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// TransactionServiceHandler is implemented by the server side of the TransactionService.
type TransactionServiceHandler interface {
	ListTransactions(context.Context, *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error)
	CreateTransaction(context.Context, *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[UpdateTransactionRequest]) (*connect.Response[UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error)
	ClearTransactions(context.Context, *connect.Request[ClearTransactionsRequest]) (*connect.Response[ClearTransactionsResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
}

// NewTransactionServiceHandler builds an HTTP handler for every TransactionService procedure.
// It returns the path prefix to mount the handler on.
func NewTransactionServiceHandler(svc TransactionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(TransactionServiceListTransactionsProcedure, connect.NewUnaryHandler(TransactionServiceListTransactionsProcedure, svc.ListTransactions, opts...))
	mux.Handle(TransactionServiceCreateTransactionProcedure, connect.NewUnaryHandler(TransactionServiceCreateTransactionProcedure, svc.CreateTransaction, opts...))
	mux.Handle(TransactionServiceUpdateTransactionProcedure, connect.NewUnaryHandler(TransactionServiceUpdateTransactionProcedure, svc.UpdateTransaction, opts...))
	mux.Handle(TransactionServiceDeleteTransactionProcedure, connect.NewUnaryHandler(TransactionServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...))
	mux.Handle(TransactionServiceClearTransactionsProcedure, connect.NewUnaryHandler(TransactionServiceClearTransactionsProcedure, svc.ClearTransactions, opts...))
	mux.Handle(TransactionServiceGetSummaryProcedure, connect.NewUnaryHandler(TransactionServiceGetSummaryProcedure, svc.GetSummary, opts...))
	return "/" + TransactionServiceName + "/", mux
}

// TransactionServiceClient is a typed client for the TransactionService.
type TransactionServiceClient struct {
	listTransactions  *connect.Client[ListTransactionsRequest, ListTransactionsResponse]
	createTransaction *connect.Client[CreateTransactionRequest, CreateTransactionResponse]
	updateTransaction *connect.Client[UpdateTransactionRequest, UpdateTransactionResponse]
	deleteTransaction *connect.Client[DeleteTransactionRequest, DeleteTransactionResponse]
	clearTransactions *connect.Client[ClearTransactionsRequest, ClearTransactionsResponse]
	getSummary        *connect.Client[GetSummaryRequest, GetSummaryResponse]
}

// NewTransactionServiceClient creates a client for the TransactionService served at baseURL.
func NewTransactionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TransactionServiceClient {
	opts = clientOptions(opts)
	return &TransactionServiceClient{
		listTransactions:  connect.NewClient[ListTransactionsRequest, ListTransactionsResponse](httpClient, baseURL+TransactionServiceListTransactionsProcedure, opts...),
		createTransaction: connect.NewClient[CreateTransactionRequest, CreateTransactionResponse](httpClient, baseURL+TransactionServiceCreateTransactionProcedure, opts...),
		updateTransaction: connect.NewClient[UpdateTransactionRequest, UpdateTransactionResponse](httpClient, baseURL+TransactionServiceUpdateTransactionProcedure, opts...),
		deleteTransaction: connect.NewClient[DeleteTransactionRequest, DeleteTransactionResponse](httpClient, baseURL+TransactionServiceDeleteTransactionProcedure, opts...),
		clearTransactions: connect.NewClient[ClearTransactionsRequest, ClearTransactionsResponse](httpClient, baseURL+TransactionServiceClearTransactionsProcedure, opts...),
		getSummary:        connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+TransactionServiceGetSummaryProcedure, opts...),
	}
}

func (c *TransactionServiceClient) ListTransactions(ctx context.Context, req *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *TransactionServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *TransactionServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[UpdateTransactionRequest]) (*connect.Response[UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

func (c *TransactionServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *TransactionServiceClient) ClearTransactions(ctx context.Context, req *connect.Request[ClearTransactionsRequest]) (*connect.Response[ClearTransactionsResponse], error) {
	return c.clearTransactions.CallUnary(ctx, req)
}

func (c *TransactionServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

// GroupServiceHandler is implemented by the server side of the GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error)
	AddMember(context.Context, *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error)
	RenameMember(context.Context, *connect.Request[RenameMemberRequest]) (*connect.Response[RenameMemberResponse], error)
	SetRentPaid(context.Context, *connect.Request[SetRentPaidRequest]) (*connect.Response[SetRentPaidResponse], error)
	ResetRent(context.Context, *connect.Request[ResetRentRequest]) (*connect.Response[ResetRentResponse], error)
	ResetBalances(context.Context, *connect.Request[ResetBalancesRequest]) (*connect.Response[ResetBalancesResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler for every GroupService procedure.
// It returns the path prefix to mount the handler on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(GroupServiceCreateGroupProcedure, connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(GroupServiceGetGroupProcedure, connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...))
	mux.Handle(GroupServiceListGroupsProcedure, connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(GroupServiceUpdateGroupProcedure, connect.NewUnaryHandler(GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...))
	mux.Handle(GroupServiceDeleteGroupProcedure, connect.NewUnaryHandler(GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...))
	mux.Handle(GroupServiceAddMemberProcedure, connect.NewUnaryHandler(GroupServiceAddMemberProcedure, svc.AddMember, opts...))
	mux.Handle(GroupServiceRemoveMemberProcedure, connect.NewUnaryHandler(GroupServiceRemoveMemberProcedure, svc.RemoveMember, opts...))
	mux.Handle(GroupServiceRenameMemberProcedure, connect.NewUnaryHandler(GroupServiceRenameMemberProcedure, svc.RenameMember, opts...))
	mux.Handle(GroupServiceSetRentPaidProcedure, connect.NewUnaryHandler(GroupServiceSetRentPaidProcedure, svc.SetRentPaid, opts...))
	mux.Handle(GroupServiceResetRentProcedure, connect.NewUnaryHandler(GroupServiceResetRentProcedure, svc.ResetRent, opts...))
	mux.Handle(GroupServiceResetBalancesProcedure, connect.NewUnaryHandler(GroupServiceResetBalancesProcedure, svc.ResetBalances, opts...))
	return "/" + GroupServiceName + "/", mux
}

// GroupServiceClient is a typed client for the GroupService.
type GroupServiceClient struct {
	createGroup   *connect.Client[CreateGroupRequest, CreateGroupResponse]
	getGroup      *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups    *connect.Client[ListGroupsRequest, ListGroupsResponse]
	updateGroup   *connect.Client[UpdateGroupRequest, UpdateGroupResponse]
	deleteGroup   *connect.Client[DeleteGroupRequest, DeleteGroupResponse]
	addMember     *connect.Client[AddMemberRequest, AddMemberResponse]
	removeMember  *connect.Client[RemoveMemberRequest, RemoveMemberResponse]
	renameMember  *connect.Client[RenameMemberRequest, RenameMemberResponse]
	setRentPaid   *connect.Client[SetRentPaidRequest, SetRentPaidResponse]
	resetRent     *connect.Client[ResetRentRequest, ResetRentResponse]
	resetBalances *connect.Client[ResetBalancesRequest, ResetBalancesResponse]
}

// NewGroupServiceClient creates a client for the GroupService served at baseURL.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	opts = clientOptions(opts)
	return &GroupServiceClient{
		createGroup:   connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		getGroup:      connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroups:    connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		updateGroup:   connect.NewClient[UpdateGroupRequest, UpdateGroupResponse](httpClient, baseURL+GroupServiceUpdateGroupProcedure, opts...),
		deleteGroup:   connect.NewClient[DeleteGroupRequest, DeleteGroupResponse](httpClient, baseURL+GroupServiceDeleteGroupProcedure, opts...),
		addMember:     connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+GroupServiceAddMemberProcedure, opts...),
		removeMember:  connect.NewClient[RemoveMemberRequest, RemoveMemberResponse](httpClient, baseURL+GroupServiceRemoveMemberProcedure, opts...),
		renameMember:  connect.NewClient[RenameMemberRequest, RenameMemberResponse](httpClient, baseURL+GroupServiceRenameMemberProcedure, opts...),
		setRentPaid:   connect.NewClient[SetRentPaidRequest, SetRentPaidResponse](httpClient, baseURL+GroupServiceSetRentPaidProcedure, opts...),
		resetRent:     connect.NewClient[ResetRentRequest, ResetRentResponse](httpClient, baseURL+GroupServiceResetRentProcedure, opts...),
		resetBalances: connect.NewClient[ResetBalancesRequest, ResetBalancesResponse](httpClient, baseURL+GroupServiceResetBalancesProcedure, opts...),
	}
}

func (c *GroupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *GroupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *GroupServiceClient) RemoveMember(ctx context.Context, req *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

func (c *GroupServiceClient) RenameMember(ctx context.Context, req *connect.Request[RenameMemberRequest]) (*connect.Response[RenameMemberResponse], error) {
	return c.renameMember.CallUnary(ctx, req)
}

func (c *GroupServiceClient) SetRentPaid(ctx context.Context, req *connect.Request[SetRentPaidRequest]) (*connect.Response[SetRentPaidResponse], error) {
	return c.setRentPaid.CallUnary(ctx, req)
}

func (c *GroupServiceClient) ResetRent(ctx context.Context, req *connect.Request[ResetRentRequest]) (*connect.Response[ResetRentResponse], error) {
	return c.resetRent.CallUnary(ctx, req)
}

func (c *GroupServiceClient) ResetBalances(ctx context.Context, req *connect.Request[ResetBalancesRequest]) (*connect.Response[ResetBalancesResponse], error) {
	return c.resetBalances.CallUnary(ctx, req)
}

// LedgerServiceHandler is implemented by the server side of the LedgerService.
type LedgerServiceHandler interface {
	ListEntries(context.Context, *connect.Request[ListEntriesRequest]) (*connect.Response[ListEntriesResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	DeleteEntry(context.Context, *connect.Request[DeleteEntryRequest]) (*connect.Response[DeleteEntryResponse], error)
	RecordPayment(context.Context, *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error)
	AddMoney(context.Context, *connect.Request[AddMoneyRequest]) (*connect.Response[AddMoneyResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for every LedgerService procedure.
// It returns the path prefix to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(LedgerServiceListEntriesProcedure, connect.NewUnaryHandler(LedgerServiceListEntriesProcedure, svc.ListEntries, opts...))
	mux.Handle(LedgerServiceAddExpenseProcedure, connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(LedgerServiceDeleteEntryProcedure, connect.NewUnaryHandler(LedgerServiceDeleteEntryProcedure, svc.DeleteEntry, opts...))
	mux.Handle(LedgerServiceRecordPaymentProcedure, connect.NewUnaryHandler(LedgerServiceRecordPaymentProcedure, svc.RecordPayment, opts...))
	mux.Handle(LedgerServiceAddMoneyProcedure, connect.NewUnaryHandler(LedgerServiceAddMoneyProcedure, svc.AddMoney, opts...))
	mux.Handle(LedgerServiceGetBalancesProcedure, connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...))
	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a typed client for the LedgerService.
type LedgerServiceClient struct {
	listEntries   *connect.Client[ListEntriesRequest, ListEntriesResponse]
	addExpense    *connect.Client[AddExpenseRequest, AddExpenseResponse]
	deleteEntry   *connect.Client[DeleteEntryRequest, DeleteEntryResponse]
	recordPayment *connect.Client[RecordPaymentRequest, RecordPaymentResponse]
	addMoney      *connect.Client[AddMoneyRequest, AddMoneyResponse]
	getBalances   *connect.Client[GetBalancesRequest, GetBalancesResponse]
}

// NewLedgerServiceClient creates a client for the LedgerService served at baseURL.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	opts = clientOptions(opts)
	return &LedgerServiceClient{
		listEntries:   connect.NewClient[ListEntriesRequest, ListEntriesResponse](httpClient, baseURL+LedgerServiceListEntriesProcedure, opts...),
		addExpense:    connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		deleteEntry:   connect.NewClient[DeleteEntryRequest, DeleteEntryResponse](httpClient, baseURL+LedgerServiceDeleteEntryProcedure, opts...),
		recordPayment: connect.NewClient[RecordPaymentRequest, RecordPaymentResponse](httpClient, baseURL+LedgerServiceRecordPaymentProcedure, opts...),
		addMoney:      connect.NewClient[AddMoneyRequest, AddMoneyResponse](httpClient, baseURL+LedgerServiceAddMoneyProcedure, opts...),
		getBalances:   connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
	}
}

func (c *LedgerServiceClient) ListEntries(ctx context.Context, req *connect.Request[ListEntriesRequest]) (*connect.Response[ListEntriesResponse], error) {
	return c.listEntries.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteEntry(ctx context.Context, req *connect.Request[DeleteEntryRequest]) (*connect.Response[DeleteEntryResponse], error) {
	return c.deleteEntry.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddMoney(ctx context.Context, req *connect.Request[AddMoneyRequest]) (*connect.Response[AddMoneyResponse], error) {
	return c.addMoney.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}
