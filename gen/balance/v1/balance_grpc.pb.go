// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: balance/v1/balance.proto

package balancev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BalanceService_GetBalance_FullMethodName         = "/balance.v1.BalanceService/GetBalance"
	BalanceService_EnsureAccount_FullMethodName      = "/balance.v1.BalanceService/EnsureAccount"
	BalanceService_Deposit_FullMethodName            = "/balance.v1.BalanceService/Deposit"
	BalanceService_Withdraw_FullMethodName           = "/balance.v1.BalanceService/Withdraw"
	BalanceService_ListTransactions_FullMethodName   = "/balance.v1.BalanceService/ListTransactions"
	BalanceService_ListLedger_FullMethodName         = "/balance.v1.BalanceService/ListLedger"
	BalanceService_VerifyLedger_FullMethodName       = "/balance.v1.BalanceService/VerifyLedger"
	BalanceService_ReserveForBuyIn_FullMethodName    = "/balance.v1.BalanceService/ReserveForBuyIn"
	BalanceService_CommitReservation_FullMethodName  = "/balance.v1.BalanceService/CommitReservation"
	BalanceService_ReleaseReservation_FullMethodName = "/balance.v1.BalanceService/ReleaseReservation"
	BalanceService_ProcessCashOut_FullMethodName     = "/balance.v1.BalanceService/ProcessCashOut"
	BalanceService_RecordContribution_FullMethodName = "/balance.v1.BalanceService/RecordContribution"
	BalanceService_SettlePot_FullMethodName          = "/balance.v1.BalanceService/SettlePot"
	BalanceService_CancelPot_FullMethodName          = "/balance.v1.BalanceService/CancelPot"
)

// BalanceServiceClient is the client API for BalanceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BalanceService is the chip ledger of the platform. Every response carries
// ok plus either result fields or a structured domain error; transport-level
// status codes are reserved for malformed requests and internal failures.
type BalanceServiceClient interface {
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	EnsureAccount(ctx context.Context, in *EnsureAccountRequest, opts ...grpc.CallOption) (*EnsureAccountResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error)
	ListLedger(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ListLedgerResponse, error)
	VerifyLedger(ctx context.Context, in *VerifyLedgerRequest, opts ...grpc.CallOption) (*VerifyLedgerResponse, error)
	ReserveForBuyIn(ctx context.Context, in *ReserveForBuyInRequest, opts ...grpc.CallOption) (*ReserveForBuyInResponse, error)
	CommitReservation(ctx context.Context, in *CommitReservationRequest, opts ...grpc.CallOption) (*CommitReservationResponse, error)
	ReleaseReservation(ctx context.Context, in *ReleaseReservationRequest, opts ...grpc.CallOption) (*ReleaseReservationResponse, error)
	ProcessCashOut(ctx context.Context, in *ProcessCashOutRequest, opts ...grpc.CallOption) (*ProcessCashOutResponse, error)
	RecordContribution(ctx context.Context, in *RecordContributionRequest, opts ...grpc.CallOption) (*RecordContributionResponse, error)
	SettlePot(ctx context.Context, in *SettlePotRequest, opts ...grpc.CallOption) (*SettlePotResponse, error)
	CancelPot(ctx context.Context, in *CancelPotRequest, opts ...grpc.CallOption) (*CancelPotResponse, error)
}

type balanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBalanceServiceClient(cc grpc.ClientConnInterface) BalanceServiceClient {
	return &balanceServiceClient{cc}
}

func (c *balanceServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBalanceResponse)
	err := c.cc.Invoke(ctx, BalanceService_GetBalance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) EnsureAccount(ctx context.Context, in *EnsureAccountRequest, opts ...grpc.CallOption) (*EnsureAccountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnsureAccountResponse)
	err := c.cc.Invoke(ctx, BalanceService_EnsureAccount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, BalanceService_Deposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, BalanceService_Withdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTransactionsResponse)
	err := c.cc.Invoke(ctx, BalanceService_ListTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) ListLedger(ctx context.Context, in *ListLedgerRequest, opts ...grpc.CallOption) (*ListLedgerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLedgerResponse)
	err := c.cc.Invoke(ctx, BalanceService_ListLedger_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) VerifyLedger(ctx context.Context, in *VerifyLedgerRequest, opts ...grpc.CallOption) (*VerifyLedgerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyLedgerResponse)
	err := c.cc.Invoke(ctx, BalanceService_VerifyLedger_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) ReserveForBuyIn(ctx context.Context, in *ReserveForBuyInRequest, opts ...grpc.CallOption) (*ReserveForBuyInResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReserveForBuyInResponse)
	err := c.cc.Invoke(ctx, BalanceService_ReserveForBuyIn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) CommitReservation(ctx context.Context, in *CommitReservationRequest, opts ...grpc.CallOption) (*CommitReservationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitReservationResponse)
	err := c.cc.Invoke(ctx, BalanceService_CommitReservation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) ReleaseReservation(ctx context.Context, in *ReleaseReservationRequest, opts ...grpc.CallOption) (*ReleaseReservationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReleaseReservationResponse)
	err := c.cc.Invoke(ctx, BalanceService_ReleaseReservation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) ProcessCashOut(ctx context.Context, in *ProcessCashOutRequest, opts ...grpc.CallOption) (*ProcessCashOutResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessCashOutResponse)
	err := c.cc.Invoke(ctx, BalanceService_ProcessCashOut_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) RecordContribution(ctx context.Context, in *RecordContributionRequest, opts ...grpc.CallOption) (*RecordContributionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordContributionResponse)
	err := c.cc.Invoke(ctx, BalanceService_RecordContribution_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) SettlePot(ctx context.Context, in *SettlePotRequest, opts ...grpc.CallOption) (*SettlePotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SettlePotResponse)
	err := c.cc.Invoke(ctx, BalanceService_SettlePot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *balanceServiceClient) CancelPot(ctx context.Context, in *CancelPotRequest, opts ...grpc.CallOption) (*CancelPotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelPotResponse)
	err := c.cc.Invoke(ctx, BalanceService_CancelPot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BalanceServiceServer is the server API for BalanceService service.
// All implementations must embed UnimplementedBalanceServiceServer
// for forward compatibility.
//
// BalanceService is the chip ledger of the platform. Every response carries
// ok plus either result fields or a structured domain error; transport-level
// status codes are reserved for malformed requests and internal failures.
type BalanceServiceServer interface {
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	EnsureAccount(context.Context, *EnsureAccountRequest) (*EnsureAccountResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	ListLedger(context.Context, *ListLedgerRequest) (*ListLedgerResponse, error)
	VerifyLedger(context.Context, *VerifyLedgerRequest) (*VerifyLedgerResponse, error)
	ReserveForBuyIn(context.Context, *ReserveForBuyInRequest) (*ReserveForBuyInResponse, error)
	CommitReservation(context.Context, *CommitReservationRequest) (*CommitReservationResponse, error)
	ReleaseReservation(context.Context, *ReleaseReservationRequest) (*ReleaseReservationResponse, error)
	ProcessCashOut(context.Context, *ProcessCashOutRequest) (*ProcessCashOutResponse, error)
	RecordContribution(context.Context, *RecordContributionRequest) (*RecordContributionResponse, error)
	SettlePot(context.Context, *SettlePotRequest) (*SettlePotResponse, error)
	CancelPot(context.Context, *CancelPotRequest) (*CancelPotResponse, error)
	mustEmbedUnimplementedBalanceServiceServer()
}

// UnimplementedBalanceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBalanceServiceServer struct{}

func (UnimplementedBalanceServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedBalanceServiceServer) EnsureAccount(context.Context, *EnsureAccountRequest) (*EnsureAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnsureAccount not implemented")
}
func (UnimplementedBalanceServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedBalanceServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedBalanceServiceServer) ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTransactions not implemented")
}
func (UnimplementedBalanceServiceServer) ListLedger(context.Context, *ListLedgerRequest) (*ListLedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLedger not implemented")
}
func (UnimplementedBalanceServiceServer) VerifyLedger(context.Context, *VerifyLedgerRequest) (*VerifyLedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyLedger not implemented")
}
func (UnimplementedBalanceServiceServer) ReserveForBuyIn(context.Context, *ReserveForBuyInRequest) (*ReserveForBuyInResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReserveForBuyIn not implemented")
}
func (UnimplementedBalanceServiceServer) CommitReservation(context.Context, *CommitReservationRequest) (*CommitReservationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommitReservation not implemented")
}
func (UnimplementedBalanceServiceServer) ReleaseReservation(context.Context, *ReleaseReservationRequest) (*ReleaseReservationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReleaseReservation not implemented")
}
func (UnimplementedBalanceServiceServer) ProcessCashOut(context.Context, *ProcessCashOutRequest) (*ProcessCashOutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessCashOut not implemented")
}
func (UnimplementedBalanceServiceServer) RecordContribution(context.Context, *RecordContributionRequest) (*RecordContributionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordContribution not implemented")
}
func (UnimplementedBalanceServiceServer) SettlePot(context.Context, *SettlePotRequest) (*SettlePotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SettlePot not implemented")
}
func (UnimplementedBalanceServiceServer) CancelPot(context.Context, *CancelPotRequest) (*CancelPotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelPot not implemented")
}
func (UnimplementedBalanceServiceServer) mustEmbedUnimplementedBalanceServiceServer() {}
func (UnimplementedBalanceServiceServer) testEmbeddedByValue()                        {}

// UnsafeBalanceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BalanceServiceServer will
// result in compilation errors.
type UnsafeBalanceServiceServer interface {
	mustEmbedUnimplementedBalanceServiceServer()
}

func RegisterBalanceServiceServer(s grpc.ServiceRegistrar, srv BalanceServiceServer) {
	// If the following call pancis, it indicates UnimplementedBalanceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BalanceService_ServiceDesc, srv)
}

func _BalanceService_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_GetBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_EnsureAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnsureAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).EnsureAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_EnsureAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).EnsureAccount(ctx, req.(*EnsureAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_ListTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).ListTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_ListTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).ListTransactions(ctx, req.(*ListTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_ListLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).ListLedger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_ListLedger_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).ListLedger(ctx, req.(*ListLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_VerifyLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).VerifyLedger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_VerifyLedger_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).VerifyLedger(ctx, req.(*VerifyLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_ReserveForBuyIn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReserveForBuyInRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).ReserveForBuyIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_ReserveForBuyIn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).ReserveForBuyIn(ctx, req.(*ReserveForBuyInRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_CommitReservation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitReservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).CommitReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_CommitReservation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).CommitReservation(ctx, req.(*CommitReservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_ReleaseReservation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReleaseReservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).ReleaseReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_ReleaseReservation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).ReleaseReservation(ctx, req.(*ReleaseReservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_ProcessCashOut_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessCashOutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).ProcessCashOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_ProcessCashOut_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).ProcessCashOut(ctx, req.(*ProcessCashOutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_RecordContribution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordContributionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).RecordContribution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_RecordContribution_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).RecordContribution(ctx, req.(*RecordContributionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_SettlePot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SettlePotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).SettlePot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_SettlePot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).SettlePot(ctx, req.(*SettlePotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BalanceService_CancelPot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelPotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BalanceServiceServer).CancelPot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BalanceService_CancelPot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BalanceServiceServer).CancelPot(ctx, req.(*CancelPotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BalanceService_ServiceDesc is the grpc.ServiceDesc for BalanceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BalanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "balance.v1.BalanceService",
	HandlerType: (*BalanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetBalance",
			Handler:    _BalanceService_GetBalance_Handler,
		},
		{
			MethodName: "EnsureAccount",
			Handler:    _BalanceService_EnsureAccount_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _BalanceService_Deposit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _BalanceService_Withdraw_Handler,
		},
		{
			MethodName: "ListTransactions",
			Handler:    _BalanceService_ListTransactions_Handler,
		},
		{
			MethodName: "ListLedger",
			Handler:    _BalanceService_ListLedger_Handler,
		},
		{
			MethodName: "VerifyLedger",
			Handler:    _BalanceService_VerifyLedger_Handler,
		},
		{
			MethodName: "ReserveForBuyIn",
			Handler:    _BalanceService_ReserveForBuyIn_Handler,
		},
		{
			MethodName: "CommitReservation",
			Handler:    _BalanceService_CommitReservation_Handler,
		},
		{
			MethodName: "ReleaseReservation",
			Handler:    _BalanceService_ReleaseReservation_Handler,
		},
		{
			MethodName: "ProcessCashOut",
			Handler:    _BalanceService_ProcessCashOut_Handler,
		},
		{
			MethodName: "RecordContribution",
			Handler:    _BalanceService_RecordContribution_Handler,
		},
		{
			MethodName: "SettlePot",
			Handler:    _BalanceService_SettlePot_Handler,
		},
		{
			MethodName: "CancelPot",
			Handler:    _BalanceService_CancelPot_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "balance/v1/balance.proto",
}
