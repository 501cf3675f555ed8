// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: balance/v1/balance.proto

package balancev1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// DomainError is an in-band failure: the request was well-formed, the
// operation was refused. available_balance accompanies INSUFFICIENT_BALANCE.
type DomainError struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Code             string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message          string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	AvailableBalance *int64                 `protobuf:"varint,3,opt,name=available_balance,json=availableBalance,proto3,oneof" json:"available_balance,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DomainError) Reset() {
	*x = DomainError{}
	mi := &file_balance_v1_balance_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DomainError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DomainError) ProtoMessage() {}

func (x *DomainError) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DomainError.ProtoReflect.Descriptor instead.
func (*DomainError) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{0}
}

func (x *DomainError) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *DomainError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *DomainError) GetAvailableBalance() int64 {
	if x != nil && x.AvailableBalance != nil {
		return *x.AvailableBalance
	}
	return 0
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId string                 `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Amount        int64                  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	BalanceBefore int64                  `protobuf:"varint,4,opt,name=balance_before,json=balanceBefore,proto3" json:"balance_before,omitempty"`
	BalanceAfter  int64                  `protobuf:"varint,5,opt,name=balance_after,json=balanceAfter,proto3" json:"balance_after,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CompletedAt   string                 `protobuf:"bytes,8,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_balance_v1_balance_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{1}
}

func (x *Transaction) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *Transaction) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Transaction) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Transaction) GetBalanceBefore() int64 {
	if x != nil {
		return x.BalanceBefore
	}
	return 0
}

func (x *Transaction) GetBalanceAfter() int64 {
	if x != nil {
		return x.BalanceAfter
	}
	return 0
}

func (x *Transaction) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Transaction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Transaction) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type LedgerEntry struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	EntryId          string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	TransactionId    string                 `protobuf:"bytes,2,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	AccountId        string                 `protobuf:"bytes,3,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Type             string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	Amount           int64                  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	BalanceBefore    int64                  `protobuf:"varint,6,opt,name=balance_before,json=balanceBefore,proto3" json:"balance_before,omitempty"`
	BalanceAfter     int64                  `protobuf:"varint,7,opt,name=balance_after,json=balanceAfter,proto3" json:"balance_after,omitempty"`
	Timestamp        string                 `protobuf:"bytes,8,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	PreviousChecksum string                 `protobuf:"bytes,9,opt,name=previous_checksum,json=previousChecksum,proto3" json:"previous_checksum,omitempty"`
	Checksum         string                 `protobuf:"bytes,10,opt,name=checksum,proto3" json:"checksum,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *LedgerEntry) Reset() {
	*x = LedgerEntry{}
	mi := &file_balance_v1_balance_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LedgerEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LedgerEntry) ProtoMessage() {}

func (x *LedgerEntry) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LedgerEntry.ProtoReflect.Descriptor instead.
func (*LedgerEntry) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{2}
}

func (x *LedgerEntry) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *LedgerEntry) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *LedgerEntry) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *LedgerEntry) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *LedgerEntry) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *LedgerEntry) GetBalanceBefore() int64 {
	if x != nil {
		return x.BalanceBefore
	}
	return 0
}

func (x *LedgerEntry) GetBalanceAfter() int64 {
	if x != nil {
		return x.BalanceAfter
	}
	return 0
}

func (x *LedgerEntry) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *LedgerEntry) GetPreviousChecksum() string {
	if x != nil {
		return x.PreviousChecksum
	}
	return ""
}

func (x *LedgerEntry) GetChecksum() string {
	if x != nil {
		return x.Checksum
	}
	return ""
}

type GetBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{3}
}

func (x *GetBalanceRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

type GetBalanceResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Ok               bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error            *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	AccountId        string                 `protobuf:"bytes,3,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Balance          int64                  `protobuf:"varint,4,opt,name=balance,proto3" json:"balance,omitempty"`
	AvailableBalance int64                  `protobuf:"varint,5,opt,name=available_balance,json=availableBalance,proto3" json:"available_balance,omitempty"`
	Currency         string                 `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	Version          int64                  `protobuf:"varint,7,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{4}
}

func (x *GetBalanceResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *GetBalanceResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *GetBalanceResponse) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *GetBalanceResponse) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *GetBalanceResponse) GetAvailableBalance() int64 {
	if x != nil {
		return x.AvailableBalance
	}
	return 0
}

func (x *GetBalanceResponse) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *GetBalanceResponse) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

type EnsureAccountRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AccountId      string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	InitialBalance int64                  `protobuf:"varint,2,opt,name=initial_balance,json=initialBalance,proto3" json:"initial_balance,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EnsureAccountRequest) Reset() {
	*x = EnsureAccountRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnsureAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnsureAccountRequest) ProtoMessage() {}

func (x *EnsureAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnsureAccountRequest.ProtoReflect.Descriptor instead.
func (*EnsureAccountRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{5}
}

func (x *EnsureAccountRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *EnsureAccountRequest) GetInitialBalance() int64 {
	if x != nil {
		return x.InitialBalance
	}
	return 0
}

type EnsureAccountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	AccountId     string                 `protobuf:"bytes,3,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Balance       int64                  `protobuf:"varint,4,opt,name=balance,proto3" json:"balance,omitempty"`
	Currency      string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	Version       int64                  `protobuf:"varint,6,opt,name=version,proto3" json:"version,omitempty"`
	Created       bool                   `protobuf:"varint,7,opt,name=created,proto3" json:"created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnsureAccountResponse) Reset() {
	*x = EnsureAccountResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnsureAccountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnsureAccountResponse) ProtoMessage() {}

func (x *EnsureAccountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnsureAccountResponse.ProtoReflect.Descriptor instead.
func (*EnsureAccountResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{6}
}

func (x *EnsureAccountResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *EnsureAccountResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *EnsureAccountResponse) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *EnsureAccountResponse) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *EnsureAccountResponse) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *EnsureAccountResponse) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *EnsureAccountResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

type DepositRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AccountId      string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Amount         int64                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Source         string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,4,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DepositRequest) Reset() {
	*x = DepositRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositRequest) ProtoMessage() {}

func (x *DepositRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositRequest.ProtoReflect.Descriptor instead.
func (*DepositRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{7}
}

func (x *DepositRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *DepositRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *DepositRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *DepositRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type DepositResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Transaction   *Transaction           `protobuf:"bytes,3,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositResponse) Reset() {
	*x = DepositResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositResponse) ProtoMessage() {}

func (x *DepositResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositResponse.ProtoReflect.Descriptor instead.
func (*DepositResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{8}
}

func (x *DepositResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *DepositResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *DepositResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type WithdrawRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AccountId      string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Amount         int64                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Reason         string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,4,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *WithdrawRequest) Reset() {
	*x = WithdrawRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawRequest) ProtoMessage() {}

func (x *WithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawRequest.ProtoReflect.Descriptor instead.
func (*WithdrawRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{9}
}

func (x *WithdrawRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *WithdrawRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *WithdrawRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *WithdrawRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type WithdrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Transaction   *Transaction           `protobuf:"bytes,3,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawResponse) Reset() {
	*x = WithdrawResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawResponse) ProtoMessage() {}

func (x *WithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawResponse.ProtoReflect.Descriptor instead.
func (*WithdrawResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{10}
}

func (x *WithdrawResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *WithdrawResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *WithdrawResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type ListTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	Type          string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{11}
}

func (x *ListTransactionsRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListTransactionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListTransactionsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *ListTransactionsRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Transactions  []*Transaction         `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions,omitempty"`
	Total         int32                  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	Limit         int32                  `protobuf:"varint,5,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,6,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{12}
}

func (x *ListTransactionsResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ListTransactionsResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

func (x *ListTransactionsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ListTransactionsResponse) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListTransactionsResponse) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListLedgerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	From          string                 `protobuf:"bytes,3,opt,name=from,proto3" json:"from,omitempty"`
	To            string                 `protobuf:"bytes,4,opt,name=to,proto3" json:"to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLedgerRequest) Reset() {
	*x = ListLedgerRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLedgerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLedgerRequest) ProtoMessage() {}

func (x *ListLedgerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLedgerRequest.ProtoReflect.Descriptor instead.
func (*ListLedgerRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{13}
}

func (x *ListLedgerRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListLedgerRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListLedgerRequest) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *ListLedgerRequest) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

type ListLedgerResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Ok             bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error          *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Entries        []*LedgerEntry         `protobuf:"bytes,3,rep,name=entries,proto3" json:"entries,omitempty"`
	Total          int32                  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	LatestChecksum string                 `protobuf:"bytes,5,opt,name=latest_checksum,json=latestChecksum,proto3" json:"latest_checksum,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListLedgerResponse) Reset() {
	*x = ListLedgerResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLedgerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLedgerResponse) ProtoMessage() {}

func (x *ListLedgerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLedgerResponse.ProtoReflect.Descriptor instead.
func (*ListLedgerResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{14}
}

func (x *ListLedgerResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ListLedgerResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *ListLedgerResponse) GetEntries() []*LedgerEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *ListLedgerResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ListLedgerResponse) GetLatestChecksum() string {
	if x != nil {
		return x.LatestChecksum
	}
	return ""
}

type VerifyLedgerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyLedgerRequest) Reset() {
	*x = VerifyLedgerRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyLedgerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyLedgerRequest) ProtoMessage() {}

func (x *VerifyLedgerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyLedgerRequest.ProtoReflect.Descriptor instead.
func (*VerifyLedgerRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{15}
}

func (x *VerifyLedgerRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

type VerifyLedgerResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Ok                bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error             *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Valid             bool                   `protobuf:"varint,3,opt,name=valid,proto3" json:"valid,omitempty"`
	EntriesChecked    int32                  `protobuf:"varint,4,opt,name=entries_checked,json=entriesChecked,proto3" json:"entries_checked,omitempty"`
	FirstInvalidEntry string                 `protobuf:"bytes,5,opt,name=first_invalid_entry,json=firstInvalidEntry,proto3" json:"first_invalid_entry,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *VerifyLedgerResponse) Reset() {
	*x = VerifyLedgerResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyLedgerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyLedgerResponse) ProtoMessage() {}

func (x *VerifyLedgerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyLedgerResponse.ProtoReflect.Descriptor instead.
func (*VerifyLedgerResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{16}
}

func (x *VerifyLedgerResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *VerifyLedgerResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *VerifyLedgerResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

func (x *VerifyLedgerResponse) GetEntriesChecked() int32 {
	if x != nil {
		return x.EntriesChecked
	}
	return 0
}

func (x *VerifyLedgerResponse) GetFirstInvalidEntry() string {
	if x != nil {
		return x.FirstInvalidEntry
	}
	return ""
}

type ReserveForBuyInRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AccountId      string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	TableId        string                 `protobuf:"bytes,2,opt,name=table_id,json=tableId,proto3" json:"table_id,omitempty"`
	Amount         int64                  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,4,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	TimeoutSeconds int32                  `protobuf:"varint,5,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ReserveForBuyInRequest) Reset() {
	*x = ReserveForBuyInRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReserveForBuyInRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReserveForBuyInRequest) ProtoMessage() {}

func (x *ReserveForBuyInRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReserveForBuyInRequest.ProtoReflect.Descriptor instead.
func (*ReserveForBuyInRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{17}
}

func (x *ReserveForBuyInRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ReserveForBuyInRequest) GetTableId() string {
	if x != nil {
		return x.TableId
	}
	return ""
}

func (x *ReserveForBuyInRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *ReserveForBuyInRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

func (x *ReserveForBuyInRequest) GetTimeoutSeconds() int32 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

type ReserveForBuyInResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Ok               bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error            *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	ReservationId    string                 `protobuf:"bytes,3,opt,name=reservation_id,json=reservationId,proto3" json:"reservation_id,omitempty"`
	AvailableBalance int64                  `protobuf:"varint,4,opt,name=available_balance,json=availableBalance,proto3" json:"available_balance,omitempty"`
	ExpiresAt        string                 `protobuf:"bytes,5,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ReserveForBuyInResponse) Reset() {
	*x = ReserveForBuyInResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReserveForBuyInResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReserveForBuyInResponse) ProtoMessage() {}

func (x *ReserveForBuyInResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReserveForBuyInResponse.ProtoReflect.Descriptor instead.
func (*ReserveForBuyInResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{18}
}

func (x *ReserveForBuyInResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ReserveForBuyInResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *ReserveForBuyInResponse) GetReservationId() string {
	if x != nil {
		return x.ReservationId
	}
	return ""
}

func (x *ReserveForBuyInResponse) GetAvailableBalance() int64 {
	if x != nil {
		return x.AvailableBalance
	}
	return 0
}

func (x *ReserveForBuyInResponse) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type CommitReservationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReservationId string                 `protobuf:"bytes,1,opt,name=reservation_id,json=reservationId,proto3" json:"reservation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitReservationRequest) Reset() {
	*x = CommitReservationRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitReservationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitReservationRequest) ProtoMessage() {}

func (x *CommitReservationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitReservationRequest.ProtoReflect.Descriptor instead.
func (*CommitReservationRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{19}
}

func (x *CommitReservationRequest) GetReservationId() string {
	if x != nil {
		return x.ReservationId
	}
	return ""
}

type CommitReservationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	TransactionId string                 `protobuf:"bytes,3,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	NewBalance    int64                  `protobuf:"varint,4,opt,name=new_balance,json=newBalance,proto3" json:"new_balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitReservationResponse) Reset() {
	*x = CommitReservationResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitReservationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitReservationResponse) ProtoMessage() {}

func (x *CommitReservationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitReservationResponse.ProtoReflect.Descriptor instead.
func (*CommitReservationResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{20}
}

func (x *CommitReservationResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *CommitReservationResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *CommitReservationResponse) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *CommitReservationResponse) GetNewBalance() int64 {
	if x != nil {
		return x.NewBalance
	}
	return 0
}

type ReleaseReservationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReservationId string                 `protobuf:"bytes,1,opt,name=reservation_id,json=reservationId,proto3" json:"reservation_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseReservationRequest) Reset() {
	*x = ReleaseReservationRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseReservationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseReservationRequest) ProtoMessage() {}

func (x *ReleaseReservationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseReservationRequest.ProtoReflect.Descriptor instead.
func (*ReleaseReservationRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{21}
}

func (x *ReleaseReservationRequest) GetReservationId() string {
	if x != nil {
		return x.ReservationId
	}
	return ""
}

func (x *ReleaseReservationRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ReleaseReservationResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Ok               bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error            *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	AvailableBalance int64                  `protobuf:"varint,3,opt,name=available_balance,json=availableBalance,proto3" json:"available_balance,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ReleaseReservationResponse) Reset() {
	*x = ReleaseReservationResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseReservationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseReservationResponse) ProtoMessage() {}

func (x *ReleaseReservationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseReservationResponse.ProtoReflect.Descriptor instead.
func (*ReleaseReservationResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{22}
}

func (x *ReleaseReservationResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ReleaseReservationResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *ReleaseReservationResponse) GetAvailableBalance() int64 {
	if x != nil {
		return x.AvailableBalance
	}
	return 0
}

type ProcessCashOutRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AccountId      string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	TableId        string                 `protobuf:"bytes,2,opt,name=table_id,json=tableId,proto3" json:"table_id,omitempty"`
	SeatId         string                 `protobuf:"bytes,3,opt,name=seat_id,json=seatId,proto3" json:"seat_id,omitempty"`
	Amount         int64                  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,5,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	HandId         string                 `protobuf:"bytes,6,opt,name=hand_id,json=handId,proto3" json:"hand_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessCashOutRequest) Reset() {
	*x = ProcessCashOutRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessCashOutRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessCashOutRequest) ProtoMessage() {}

func (x *ProcessCashOutRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessCashOutRequest.ProtoReflect.Descriptor instead.
func (*ProcessCashOutRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{23}
}

func (x *ProcessCashOutRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ProcessCashOutRequest) GetTableId() string {
	if x != nil {
		return x.TableId
	}
	return ""
}

func (x *ProcessCashOutRequest) GetSeatId() string {
	if x != nil {
		return x.SeatId
	}
	return ""
}

func (x *ProcessCashOutRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *ProcessCashOutRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

func (x *ProcessCashOutRequest) GetHandId() string {
	if x != nil {
		return x.HandId
	}
	return ""
}

type ProcessCashOutResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Transaction   *Transaction           `protobuf:"bytes,3,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessCashOutResponse) Reset() {
	*x = ProcessCashOutResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessCashOutResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessCashOutResponse) ProtoMessage() {}

func (x *ProcessCashOutResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessCashOutResponse.ProtoReflect.Descriptor instead.
func (*ProcessCashOutResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{24}
}

func (x *ProcessCashOutResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ProcessCashOutResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *ProcessCashOutResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type RecordContributionRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TableId          string                 `protobuf:"bytes,1,opt,name=table_id,json=tableId,proto3" json:"table_id,omitempty"`
	HandId           string                 `protobuf:"bytes,2,opt,name=hand_id,json=handId,proto3" json:"hand_id,omitempty"`
	SeatId           int32                  `protobuf:"varint,3,opt,name=seat_id,json=seatId,proto3" json:"seat_id,omitempty"`
	AccountId        string                 `protobuf:"bytes,4,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Amount           int64                  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	ContributionType string                 `protobuf:"bytes,6,opt,name=contribution_type,json=contributionType,proto3" json:"contribution_type,omitempty"`
	IdempotencyKey   string                 `protobuf:"bytes,7,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RecordContributionRequest) Reset() {
	*x = RecordContributionRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordContributionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordContributionRequest) ProtoMessage() {}

func (x *RecordContributionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordContributionRequest.ProtoReflect.Descriptor instead.
func (*RecordContributionRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{25}
}

func (x *RecordContributionRequest) GetTableId() string {
	if x != nil {
		return x.TableId
	}
	return ""
}

func (x *RecordContributionRequest) GetHandId() string {
	if x != nil {
		return x.HandId
	}
	return ""
}

func (x *RecordContributionRequest) GetSeatId() int32 {
	if x != nil {
		return x.SeatId
	}
	return 0
}

func (x *RecordContributionRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *RecordContributionRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *RecordContributionRequest) GetContributionType() string {
	if x != nil {
		return x.ContributionType
	}
	return ""
}

func (x *RecordContributionRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type RecordContributionResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Ok               bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error            *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	TotalPot         int64                  `protobuf:"varint,3,opt,name=total_pot,json=totalPot,proto3" json:"total_pot,omitempty"`
	SeatContribution int64                  `protobuf:"varint,4,opt,name=seat_contribution,json=seatContribution,proto3" json:"seat_contribution,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RecordContributionResponse) Reset() {
	*x = RecordContributionResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordContributionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordContributionResponse) ProtoMessage() {}

func (x *RecordContributionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordContributionResponse.ProtoReflect.Descriptor instead.
func (*RecordContributionResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{26}
}

func (x *RecordContributionResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *RecordContributionResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *RecordContributionResponse) GetTotalPot() int64 {
	if x != nil {
		return x.TotalPot
	}
	return 0
}

func (x *RecordContributionResponse) GetSeatContribution() int64 {
	if x != nil {
		return x.SeatContribution
	}
	return 0
}

type Winner struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SeatId        int32                  `protobuf:"varint,1,opt,name=seat_id,json=seatId,proto3" json:"seat_id,omitempty"`
	AccountId     string                 `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Amount        int64                  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Winner) Reset() {
	*x = Winner{}
	mi := &file_balance_v1_balance_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Winner) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Winner) ProtoMessage() {}

func (x *Winner) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Winner.ProtoReflect.Descriptor instead.
func (*Winner) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{27}
}

func (x *Winner) GetSeatId() int32 {
	if x != nil {
		return x.SeatId
	}
	return 0
}

func (x *Winner) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Winner) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type SettlementResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	SeatId        int32                  `protobuf:"varint,2,opt,name=seat_id,json=seatId,proto3" json:"seat_id,omitempty"`
	TransactionId string                 `protobuf:"bytes,3,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Amount        int64                  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	NewBalance    int64                  `protobuf:"varint,5,opt,name=new_balance,json=newBalance,proto3" json:"new_balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SettlementResult) Reset() {
	*x = SettlementResult{}
	mi := &file_balance_v1_balance_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SettlementResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SettlementResult) ProtoMessage() {}

func (x *SettlementResult) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SettlementResult.ProtoReflect.Descriptor instead.
func (*SettlementResult) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{28}
}

func (x *SettlementResult) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *SettlementResult) GetSeatId() int32 {
	if x != nil {
		return x.SeatId
	}
	return 0
}

func (x *SettlementResult) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *SettlementResult) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *SettlementResult) GetNewBalance() int64 {
	if x != nil {
		return x.NewBalance
	}
	return 0
}

type SettlePotRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TableId        string                 `protobuf:"bytes,1,opt,name=table_id,json=tableId,proto3" json:"table_id,omitempty"`
	HandId         string                 `protobuf:"bytes,2,opt,name=hand_id,json=handId,proto3" json:"hand_id,omitempty"`
	Winners        []*Winner              `protobuf:"bytes,3,rep,name=winners,proto3" json:"winners,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,4,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SettlePotRequest) Reset() {
	*x = SettlePotRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SettlePotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SettlePotRequest) ProtoMessage() {}

func (x *SettlePotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SettlePotRequest.ProtoReflect.Descriptor instead.
func (*SettlePotRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{29}
}

func (x *SettlePotRequest) GetTableId() string {
	if x != nil {
		return x.TableId
	}
	return ""
}

func (x *SettlePotRequest) GetHandId() string {
	if x != nil {
		return x.HandId
	}
	return ""
}

func (x *SettlePotRequest) GetWinners() []*Winner {
	if x != nil {
		return x.Winners
	}
	return nil
}

func (x *SettlePotRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type SettlePotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Results       []*SettlementResult    `protobuf:"bytes,3,rep,name=results,proto3" json:"results,omitempty"`
	RakeAmount    int64                  `protobuf:"varint,4,opt,name=rake_amount,json=rakeAmount,proto3" json:"rake_amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SettlePotResponse) Reset() {
	*x = SettlePotResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SettlePotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SettlePotResponse) ProtoMessage() {}

func (x *SettlePotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SettlePotResponse.ProtoReflect.Descriptor instead.
func (*SettlePotResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{30}
}

func (x *SettlePotResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *SettlePotResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *SettlePotResponse) GetResults() []*SettlementResult {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *SettlePotResponse) GetRakeAmount() int64 {
	if x != nil {
		return x.RakeAmount
	}
	return 0
}

type CancelPotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TableId       string                 `protobuf:"bytes,1,opt,name=table_id,json=tableId,proto3" json:"table_id,omitempty"`
	HandId        string                 `protobuf:"bytes,2,opt,name=hand_id,json=handId,proto3" json:"hand_id,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelPotRequest) Reset() {
	*x = CancelPotRequest{}
	mi := &file_balance_v1_balance_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelPotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelPotRequest) ProtoMessage() {}

func (x *CancelPotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelPotRequest.ProtoReflect.Descriptor instead.
func (*CancelPotRequest) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{31}
}

func (x *CancelPotRequest) GetTableId() string {
	if x != nil {
		return x.TableId
	}
	return ""
}

func (x *CancelPotRequest) GetHandId() string {
	if x != nil {
		return x.HandId
	}
	return ""
}

func (x *CancelPotRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CancelPotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Error         *DomainError           `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelPotResponse) Reset() {
	*x = CancelPotResponse{}
	mi := &file_balance_v1_balance_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelPotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelPotResponse) ProtoMessage() {}

func (x *CancelPotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_balance_v1_balance_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelPotResponse.ProtoReflect.Descriptor instead.
func (*CancelPotResponse) Descriptor() ([]byte, []int) {
	return file_balance_v1_balance_proto_rawDescGZIP(), []int{32}
}

func (x *CancelPotResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *CancelPotResponse) GetError() *DomainError {
	if x != nil {
		return x.Error
	}
	return nil
}

var File_balance_v1_balance_proto protoreflect.FileDescriptor

const file_balance_v1_balance_proto_rawDesc = "" +
	"\n" +
	"\x18balance/v1/balance.proto\x12\n" +
	"balance.v1\x1a\x1cgoogle/api/annotations.proto\"\x83\x01\n" +
	"\vDomainError\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x120\n" +
	"\x11available_balance\x18\x03 \x01(\x03H\x00R\x10availableBalance\x88\x01\x01B\x14\n" +
	"\x12_available_balance\"\x86\x02\n" +
	"\vTransaction\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\tR\rtransactionId\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x03R\x06amount\x12%\n" +
	"\x0ebalance_before\x18\x04 \x01(\x03R\rbalanceBefore\x12#\n" +
	"\rbalance_after\x18\x05 \x01(\x03R\fbalanceAfter\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12!\n" +
	"\fcompleted_at\x18\b \x01(\tR\vcompletedAt\"\xcd\x02\n" +
	"\vLedgerEntry\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\x12%\n" +
	"\x0etransaction_id\x18\x02 \x01(\tR\rtransactionId\x12\x1d\n" +
	"\n" +
	"account_id\x18\x03 \x01(\tR\taccountId\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\x03R\x06amount\x12%\n" +
	"\x0ebalance_before\x18\x06 \x01(\x03R\rbalanceBefore\x12#\n" +
	"\rbalance_after\x18\a \x01(\x03R\fbalanceAfter\x12\x1c\n" +
	"\ttimestamp\x18\b \x01(\tR\ttimestamp\x12+\n" +
	"\x11previous_checksum\x18\t \x01(\tR\x10previousChecksum\x12\x1a\n" +
	"\bchecksum\x18\n" +
	" \x01(\tR\bchecksum\"2\n" +
	"\x11GetBalanceRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\"\xef\x01\n" +
	"\x12GetBalanceResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12\x1d\n" +
	"\n" +
	"account_id\x18\x03 \x01(\tR\taccountId\x12\x18\n" +
	"\abalance\x18\x04 \x01(\x03R\abalance\x12+\n" +
	"\x11available_balance\x18\x05 \x01(\x03R\x10availableBalance\x12\x1a\n" +
	"\bcurrency\x18\x06 \x01(\tR\bcurrency\x12\x18\n" +
	"\aversion\x18\a \x01(\x03R\aversion\"^\n" +
	"\x14EnsureAccountRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12'\n" +
	"\x0finitial_balance\x18\x02 \x01(\x03R\x0einitialBalance\"\xdf\x01\n" +
	"\x15EnsureAccountResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12\x1d\n" +
	"\n" +
	"account_id\x18\x03 \x01(\tR\taccountId\x12\x18\n" +
	"\abalance\x18\x04 \x01(\x03R\abalance\x12\x1a\n" +
	"\bcurrency\x18\x05 \x01(\tR\bcurrency\x12\x18\n" +
	"\aversion\x18\x06 \x01(\x03R\aversion\x12\x18\n" +
	"\acreated\x18\a \x01(\bR\acreated\"\x88\x01\n" +
	"\x0eDepositRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x03R\x06amount\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12'\n" +
	"\x0fidempotency_key\x18\x04 \x01(\tR\x0eidempotencyKey\"\x8b\x01\n" +
	"\x0fDepositResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x129\n" +
	"\vtransaction\x18\x03 \x01(\v2\x17.balance.v1.TransactionR\vtransaction\"\x89\x01\n" +
	"\x0fWithdrawRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x03R\x06amount\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x12'\n" +
	"\x0fidempotency_key\x18\x04 \x01(\tR\x0eidempotencyKey\"\x8c\x01\n" +
	"\x10WithdrawResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x129\n" +
	"\vtransaction\x18\x03 \x01(\v2\x17.balance.v1.TransactionR\vtransaction\"z\n" +
	"\x17ListTransactionsRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\"\xda\x01\n" +
	"\x18ListTransactionsResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12;\n" +
	"\ftransactions\x18\x03 \x03(\v2\x17.balance.v1.TransactionR\ftransactions\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x05R\x05total\x12\x14\n" +
	"\x05limit\x18\x05 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x06 \x01(\x05R\x06offset\"l\n" +
	"\x11ListLedgerRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x12\n" +
	"\x04from\x18\x03 \x01(\tR\x04from\x12\x0e\n" +
	"\x02to\x18\x04 \x01(\tR\x02to\"\xc5\x01\n" +
	"\x12ListLedgerResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x121\n" +
	"\aentries\x18\x03 \x03(\v2\x17.balance.v1.LedgerEntryR\aentries\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x05R\x05total\x12'\n" +
	"\x0flatest_checksum\x18\x05 \x01(\tR\x0elatestChecksum\"4\n" +
	"\x13VerifyLedgerRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\"\xc4\x01\n" +
	"\x14VerifyLedgerResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12\x14\n" +
	"\x05valid\x18\x03 \x01(\bR\x05valid\x12'\n" +
	"\x0fentries_checked\x18\x04 \x01(\x05R\x0eentriesChecked\x12.\n" +
	"\x13first_invalid_entry\x18\x05 \x01(\tR\x11firstInvalidEntry\"\xbc\x01\n" +
	"\x16ReserveForBuyInRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x19\n" +
	"\btable_id\x18\x02 \x01(\tR\atableId\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x03R\x06amount\x12'\n" +
	"\x0fidempotency_key\x18\x04 \x01(\tR\x0eidempotencyKey\x12'\n" +
	"\x0ftimeout_seconds\x18\x05 \x01(\x05R\x0etimeoutSeconds\"\xcb\x01\n" +
	"\x17ReserveForBuyInResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12%\n" +
	"\x0ereservation_id\x18\x03 \x01(\tR\rreservationId\x12+\n" +
	"\x11available_balance\x18\x04 \x01(\x03R\x10availableBalance\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x05 \x01(\tR\texpiresAt\"A\n" +
	"\x18CommitReservationRequest\x12%\n" +
	"\x0ereservation_id\x18\x01 \x01(\tR\rreservationId\"\xa2\x01\n" +
	"\x19CommitReservationResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12%\n" +
	"\x0etransaction_id\x18\x03 \x01(\tR\rtransactionId\x12\x1f\n" +
	"\vnew_balance\x18\x04 \x01(\x03R\n" +
	"newBalance\"Z\n" +
	"\x19ReleaseReservationRequest\x12%\n" +
	"\x0ereservation_id\x18\x01 \x01(\tR\rreservationId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"\x88\x01\n" +
	"\x1aReleaseReservationResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12+\n" +
	"\x11available_balance\x18\x03 \x01(\x03R\x10availableBalance\"\xc4\x01\n" +
	"\x15ProcessCashOutRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x19\n" +
	"\btable_id\x18\x02 \x01(\tR\atableId\x12\x17\n" +
	"\aseat_id\x18\x03 \x01(\tR\x06seatId\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\x03R\x06amount\x12'\n" +
	"\x0fidempotency_key\x18\x05 \x01(\tR\x0eidempotencyKey\x12\x17\n" +
	"\ahand_id\x18\x06 \x01(\tR\x06handId\"\x92\x01\n" +
	"\x16ProcessCashOutResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x129\n" +
	"\vtransaction\x18\x03 \x01(\v2\x17.balance.v1.TransactionR\vtransaction\"\xf5\x01\n" +
	"\x19RecordContributionRequest\x12\x19\n" +
	"\btable_id\x18\x01 \x01(\tR\atableId\x12\x17\n" +
	"\ahand_id\x18\x02 \x01(\tR\x06handId\x12\x17\n" +
	"\aseat_id\x18\x03 \x01(\x05R\x06seatId\x12\x1d\n" +
	"\n" +
	"account_id\x18\x04 \x01(\tR\taccountId\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\x03R\x06amount\x12+\n" +
	"\x11contribution_type\x18\x06 \x01(\tR\x10contributionType\x12'\n" +
	"\x0fidempotency_key\x18\a \x01(\tR\x0eidempotencyKey\"\xa5\x01\n" +
	"\x1aRecordContributionResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x12\x1b\n" +
	"\ttotal_pot\x18\x03 \x01(\x03R\btotalPot\x12+\n" +
	"\x11seat_contribution\x18\x04 \x01(\x03R\x10seatContribution\"X\n" +
	"\x06Winner\x12\x17\n" +
	"\aseat_id\x18\x01 \x01(\x05R\x06seatId\x12\x1d\n" +
	"\n" +
	"account_id\x18\x02 \x01(\tR\taccountId\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x03R\x06amount\"\xaa\x01\n" +
	"\x10SettlementResult\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x17\n" +
	"\aseat_id\x18\x02 \x01(\x05R\x06seatId\x12%\n" +
	"\x0etransaction_id\x18\x03 \x01(\tR\rtransactionId\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\x03R\x06amount\x12\x1f\n" +
	"\vnew_balance\x18\x05 \x01(\x03R\n" +
	"newBalance\"\x9d\x01\n" +
	"\x10SettlePotRequest\x12\x19\n" +
	"\btable_id\x18\x01 \x01(\tR\atableId\x12\x17\n" +
	"\ahand_id\x18\x02 \x01(\tR\x06handId\x12,\n" +
	"\awinners\x18\x03 \x03(\v2\x12.balance.v1.WinnerR\awinners\x12'\n" +
	"\x0fidempotency_key\x18\x04 \x01(\tR\x0eidempotencyKey\"\xab\x01\n" +
	"\x11SettlePotResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error\x126\n" +
	"\aresults\x18\x03 \x03(\v2\x1c.balance.v1.SettlementResultR\aresults\x12\x1f\n" +
	"\vrake_amount\x18\x04 \x01(\x03R\n" +
	"rakeAmount\"^\n" +
	"\x10CancelPotRequest\x12\x19\n" +
	"\btable_id\x18\x01 \x01(\tR\atableId\x12\x17\n" +
	"\ahand_id\x18\x02 \x01(\tR\x06handId\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"R\n" +
	"\x11CancelPotResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12-\n" +
	"\x05error\x18\x02 \x01(\v2\x17.balance.v1.DomainErrorR\x05error2\xf4\v\n" +
	"\x0eBalanceService\x12w\n" +
	"\n" +
	"GetBalance\x12\x1d.balance.v1.GetBalanceRequest\x1a\x1e.balance.v1.GetBalanceResponse\"*\x82\xd3\xe4\x93\x02$\x12\"/api/accounts/{account_id}/balance\x12{\n" +
	"\rEnsureAccount\x12 .balance.v1.EnsureAccountRequest\x1a!.balance.v1.EnsureAccountResponse\"%\x82\xd3\xe4\x93\x02\x1f:\x01*\"\x1a/api/accounts/{account_id}\x12q\n" +
	"\aDeposit\x12\x1a.balance.v1.DepositRequest\x1a\x1b.balance.v1.DepositResponse\"-\x82\xd3\xe4\x93\x02':\x01*\"\"/api/accounts/{account_id}/deposit\x12u\n" +
	"\bWithdraw\x12\x1b.balance.v1.WithdrawRequest\x1a\x1c.balance.v1.WithdrawResponse\".\x82\xd3\xe4\x93\x02(:\x01*\"#/api/accounts/{account_id}/withdraw\x12\x8e\x01\n" +
	"\x10ListTransactions\x12#.balance.v1.ListTransactionsRequest\x1a$.balance.v1.ListTransactionsResponse\"/\x82\xd3\xe4\x93\x02)\x12'/api/accounts/{account_id}/transactions\x12v\n" +
	"\n" +
	"ListLedger\x12\x1d.balance.v1.ListLedgerRequest\x1a\x1e.balance.v1.ListLedgerResponse\")\x82\xd3\xe4\x93\x02#\x12!/api/accounts/{account_id}/ledger\x12\x83\x01\n" +
	"\fVerifyLedger\x12\x1f.balance.v1.VerifyLedgerRequest\x1a .balance.v1.VerifyLedgerResponse\"0\x82\xd3\xe4\x93\x02*\x12(/api/accounts/{account_id}/ledger/verify\x12Z\n" +
	"\x0fReserveForBuyIn\x12\".balance.v1.ReserveForBuyInRequest\x1a#.balance.v1.ReserveForBuyInResponse\x12`\n" +
	"\x11CommitReservation\x12$.balance.v1.CommitReservationRequest\x1a%.balance.v1.CommitReservationResponse\x12c\n" +
	"\x12ReleaseReservation\x12%.balance.v1.ReleaseReservationRequest\x1a&.balance.v1.ReleaseReservationResponse\x12W\n" +
	"\x0eProcessCashOut\x12!.balance.v1.ProcessCashOutRequest\x1a\".balance.v1.ProcessCashOutResponse\x12c\n" +
	"\x12RecordContribution\x12%.balance.v1.RecordContributionRequest\x1a&.balance.v1.RecordContributionResponse\x12H\n" +
	"\tSettlePot\x12\x1c.balance.v1.SettlePotRequest\x1a\x1d.balance.v1.SettlePotResponse\x12H\n" +
	"\tCancelPot\x12\x1c.balance.v1.CancelPotRequest\x1a\x1d.balance.v1.CancelPotResponseB;Z9github.com/cardroomlabs/balanced/gen/balance/v1;balancev1b\x06proto3"

var (
	file_balance_v1_balance_proto_rawDescOnce sync.Once
	file_balance_v1_balance_proto_rawDescData []byte
)

func file_balance_v1_balance_proto_rawDescGZIP() []byte {
	file_balance_v1_balance_proto_rawDescOnce.Do(func() {
		file_balance_v1_balance_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_balance_v1_balance_proto_rawDesc), len(file_balance_v1_balance_proto_rawDesc)))
	})
	return file_balance_v1_balance_proto_rawDescData
}

var file_balance_v1_balance_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_balance_v1_balance_proto_goTypes = []any{
	(*DomainError)(nil),                // 0: balance.v1.DomainError
	(*Transaction)(nil),                // 1: balance.v1.Transaction
	(*LedgerEntry)(nil),                // 2: balance.v1.LedgerEntry
	(*GetBalanceRequest)(nil),          // 3: balance.v1.GetBalanceRequest
	(*GetBalanceResponse)(nil),         // 4: balance.v1.GetBalanceResponse
	(*EnsureAccountRequest)(nil),       // 5: balance.v1.EnsureAccountRequest
	(*EnsureAccountResponse)(nil),      // 6: balance.v1.EnsureAccountResponse
	(*DepositRequest)(nil),             // 7: balance.v1.DepositRequest
	(*DepositResponse)(nil),            // 8: balance.v1.DepositResponse
	(*WithdrawRequest)(nil),            // 9: balance.v1.WithdrawRequest
	(*WithdrawResponse)(nil),           // 10: balance.v1.WithdrawResponse
	(*ListTransactionsRequest)(nil),    // 11: balance.v1.ListTransactionsRequest
	(*ListTransactionsResponse)(nil),   // 12: balance.v1.ListTransactionsResponse
	(*ListLedgerRequest)(nil),          // 13: balance.v1.ListLedgerRequest
	(*ListLedgerResponse)(nil),         // 14: balance.v1.ListLedgerResponse
	(*VerifyLedgerRequest)(nil),        // 15: balance.v1.VerifyLedgerRequest
	(*VerifyLedgerResponse)(nil),       // 16: balance.v1.VerifyLedgerResponse
	(*ReserveForBuyInRequest)(nil),     // 17: balance.v1.ReserveForBuyInRequest
	(*ReserveForBuyInResponse)(nil),    // 18: balance.v1.ReserveForBuyInResponse
	(*CommitReservationRequest)(nil),   // 19: balance.v1.CommitReservationRequest
	(*CommitReservationResponse)(nil),  // 20: balance.v1.CommitReservationResponse
	(*ReleaseReservationRequest)(nil),  // 21: balance.v1.ReleaseReservationRequest
	(*ReleaseReservationResponse)(nil), // 22: balance.v1.ReleaseReservationResponse
	(*ProcessCashOutRequest)(nil),      // 23: balance.v1.ProcessCashOutRequest
	(*ProcessCashOutResponse)(nil),     // 24: balance.v1.ProcessCashOutResponse
	(*RecordContributionRequest)(nil),  // 25: balance.v1.RecordContributionRequest
	(*RecordContributionResponse)(nil), // 26: balance.v1.RecordContributionResponse
	(*Winner)(nil),                     // 27: balance.v1.Winner
	(*SettlementResult)(nil),           // 28: balance.v1.SettlementResult
	(*SettlePotRequest)(nil),           // 29: balance.v1.SettlePotRequest
	(*SettlePotResponse)(nil),          // 30: balance.v1.SettlePotResponse
	(*CancelPotRequest)(nil),           // 31: balance.v1.CancelPotRequest
	(*CancelPotResponse)(nil),          // 32: balance.v1.CancelPotResponse
}
var file_balance_v1_balance_proto_depIdxs = []int32{
	0,  // 0: balance.v1.GetBalanceResponse.error:type_name -> balance.v1.DomainError
	0,  // 1: balance.v1.EnsureAccountResponse.error:type_name -> balance.v1.DomainError
	0,  // 2: balance.v1.DepositResponse.error:type_name -> balance.v1.DomainError
	1,  // 3: balance.v1.DepositResponse.transaction:type_name -> balance.v1.Transaction
	0,  // 4: balance.v1.WithdrawResponse.error:type_name -> balance.v1.DomainError
	1,  // 5: balance.v1.WithdrawResponse.transaction:type_name -> balance.v1.Transaction
	0,  // 6: balance.v1.ListTransactionsResponse.error:type_name -> balance.v1.DomainError
	1,  // 7: balance.v1.ListTransactionsResponse.transactions:type_name -> balance.v1.Transaction
	0,  // 8: balance.v1.ListLedgerResponse.error:type_name -> balance.v1.DomainError
	2,  // 9: balance.v1.ListLedgerResponse.entries:type_name -> balance.v1.LedgerEntry
	0,  // 10: balance.v1.VerifyLedgerResponse.error:type_name -> balance.v1.DomainError
	0,  // 11: balance.v1.ReserveForBuyInResponse.error:type_name -> balance.v1.DomainError
	0,  // 12: balance.v1.CommitReservationResponse.error:type_name -> balance.v1.DomainError
	0,  // 13: balance.v1.ReleaseReservationResponse.error:type_name -> balance.v1.DomainError
	0,  // 14: balance.v1.ProcessCashOutResponse.error:type_name -> balance.v1.DomainError
	1,  // 15: balance.v1.ProcessCashOutResponse.transaction:type_name -> balance.v1.Transaction
	0,  // 16: balance.v1.RecordContributionResponse.error:type_name -> balance.v1.DomainError
	27, // 17: balance.v1.SettlePotRequest.winners:type_name -> balance.v1.Winner
	0,  // 18: balance.v1.SettlePotResponse.error:type_name -> balance.v1.DomainError
	28, // 19: balance.v1.SettlePotResponse.results:type_name -> balance.v1.SettlementResult
	0,  // 20: balance.v1.CancelPotResponse.error:type_name -> balance.v1.DomainError
	3,  // 21: balance.v1.BalanceService.GetBalance:input_type -> balance.v1.GetBalanceRequest
	5,  // 22: balance.v1.BalanceService.EnsureAccount:input_type -> balance.v1.EnsureAccountRequest
	7,  // 23: balance.v1.BalanceService.Deposit:input_type -> balance.v1.DepositRequest
	9,  // 24: balance.v1.BalanceService.Withdraw:input_type -> balance.v1.WithdrawRequest
	11, // 25: balance.v1.BalanceService.ListTransactions:input_type -> balance.v1.ListTransactionsRequest
	13, // 26: balance.v1.BalanceService.ListLedger:input_type -> balance.v1.ListLedgerRequest
	15, // 27: balance.v1.BalanceService.VerifyLedger:input_type -> balance.v1.VerifyLedgerRequest
	17, // 28: balance.v1.BalanceService.ReserveForBuyIn:input_type -> balance.v1.ReserveForBuyInRequest
	19, // 29: balance.v1.BalanceService.CommitReservation:input_type -> balance.v1.CommitReservationRequest
	21, // 30: balance.v1.BalanceService.ReleaseReservation:input_type -> balance.v1.ReleaseReservationRequest
	23, // 31: balance.v1.BalanceService.ProcessCashOut:input_type -> balance.v1.ProcessCashOutRequest
	25, // 32: balance.v1.BalanceService.RecordContribution:input_type -> balance.v1.RecordContributionRequest
	29, // 33: balance.v1.BalanceService.SettlePot:input_type -> balance.v1.SettlePotRequest
	31, // 34: balance.v1.BalanceService.CancelPot:input_type -> balance.v1.CancelPotRequest
	4,  // 35: balance.v1.BalanceService.GetBalance:output_type -> balance.v1.GetBalanceResponse
	6,  // 36: balance.v1.BalanceService.EnsureAccount:output_type -> balance.v1.EnsureAccountResponse
	8,  // 37: balance.v1.BalanceService.Deposit:output_type -> balance.v1.DepositResponse
	10, // 38: balance.v1.BalanceService.Withdraw:output_type -> balance.v1.WithdrawResponse
	12, // 39: balance.v1.BalanceService.ListTransactions:output_type -> balance.v1.ListTransactionsResponse
	14, // 40: balance.v1.BalanceService.ListLedger:output_type -> balance.v1.ListLedgerResponse
	16, // 41: balance.v1.BalanceService.VerifyLedger:output_type -> balance.v1.VerifyLedgerResponse
	18, // 42: balance.v1.BalanceService.ReserveForBuyIn:output_type -> balance.v1.ReserveForBuyInResponse
	20, // 43: balance.v1.BalanceService.CommitReservation:output_type -> balance.v1.CommitReservationResponse
	22, // 44: balance.v1.BalanceService.ReleaseReservation:output_type -> balance.v1.ReleaseReservationResponse
	24, // 45: balance.v1.BalanceService.ProcessCashOut:output_type -> balance.v1.ProcessCashOutResponse
	26, // 46: balance.v1.BalanceService.RecordContribution:output_type -> balance.v1.RecordContributionResponse
	30, // 47: balance.v1.BalanceService.SettlePot:output_type -> balance.v1.SettlePotResponse
	32, // 48: balance.v1.BalanceService.CancelPot:output_type -> balance.v1.CancelPotResponse
	35, // [35:49] is the sub-list for method output_type
	21, // [21:35] is the sub-list for method input_type
	21, // [21:21] is the sub-list for extension type_name
	21, // [21:21] is the sub-list for extension extendee
	0,  // [0:21] is the sub-list for field type_name
}

func init() { file_balance_v1_balance_proto_init() }
func file_balance_v1_balance_proto_init() {
	if File_balance_v1_balance_proto != nil {
		return
	}
	file_balance_v1_balance_proto_msgTypes[0].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_balance_v1_balance_proto_rawDesc), len(file_balance_v1_balance_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_balance_v1_balance_proto_goTypes,
		DependencyIndexes: file_balance_v1_balance_proto_depIdxs,
		MessageInfos:      file_balance_v1_balance_proto_msgTypes,
	}.Build()
	File_balance_v1_balance_proto = out.File
	file_balance_v1_balance_proto_goTypes = nil
	file_balance_v1_balance_proto_depIdxs = nil
}
