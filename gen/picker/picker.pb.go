// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: picker.proto

package picker

import (
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

type PickRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	ContextName string                 `protobuf:"bytes,1,opt,name=context_name,json=contextName,proto3" json:"context_name,omitempty"`
	Total       int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Weights     []float64              `protobuf:"fixed64,3,rep,packed,name=weights,proto3" json:"weights,omitempty"`
	// uniform | weighted | shuffle. Empty uses the context's stored strategy.
	Strategy string `protobuf:"bytes,4,opt,name=strategy,proto3" json:"strategy,omitempty"`
	// Pool signature. Empty derives one from items, or from total alone.
	Signature string `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
	// Optional ordered candidate identifiers, only used to derive a signature.
	Items []string `protobuf:"bytes,6,rep,name=items,proto3" json:"items,omitempty"`
	// Seed for the context's stream, honored only when the context is created.
	Seed          string `protobuf:"bytes,7,opt,name=seed,proto3" json:"seed,omitempty"`
	AvoidRepeat   bool   `protobuf:"varint,8,opt,name=avoid_repeat,json=avoidRepeat,proto3" json:"avoid_repeat,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PickRequest) Reset() {
	*x = PickRequest{}
	mi := &file_picker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PickRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PickRequest) ProtoMessage() {}

func (x *PickRequest) ProtoReflect() protoreflect.Message {
	mi := &file_picker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PickRequest.ProtoReflect.Descriptor instead.
func (*PickRequest) Descriptor() ([]byte, []int) {
	return file_picker_proto_rawDescGZIP(), []int{0}
}

func (x *PickRequest) GetContextName() string {
	if x != nil {
		return x.ContextName
	}
	return ""
}

func (x *PickRequest) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *PickRequest) GetWeights() []float64 {
	if x != nil {
		return x.Weights
	}
	return nil
}

func (x *PickRequest) GetStrategy() string {
	if x != nil {
		return x.Strategy
	}
	return ""
}

func (x *PickRequest) GetSignature() string {
	if x != nil {
		return x.Signature
	}
	return ""
}

func (x *PickRequest) GetItems() []string {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *PickRequest) GetSeed() string {
	if x != nil {
		return x.Seed
	}
	return ""
}

func (x *PickRequest) GetAvoidRepeat() bool {
	if x != nil {
		return x.AvoidRepeat
	}
	return false
}

type PickResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// -1 when picked is false.
	Index         int32  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Picked        bool   `protobuf:"varint,2,opt,name=picked,proto3" json:"picked,omitempty"`
	ContextId     string `protobuf:"bytes,3,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PickResponse) Reset() {
	*x = PickResponse{}
	mi := &file_picker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PickResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PickResponse) ProtoMessage() {}

func (x *PickResponse) ProtoReflect() protoreflect.Message {
	mi := &file_picker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PickResponse.ProtoReflect.Descriptor instead.
func (*PickResponse) Descriptor() ([]byte, []int) {
	return file_picker_proto_rawDescGZIP(), []int{1}
}

func (x *PickResponse) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *PickResponse) GetPicked() bool {
	if x != nil {
		return x.Picked
	}
	return false
}

func (x *PickResponse) GetContextId() string {
	if x != nil {
		return x.ContextId
	}
	return ""
}

type GetContextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContextName   string                 `protobuf:"bytes,1,opt,name=context_name,json=contextName,proto3" json:"context_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContextRequest) Reset() {
	*x = GetContextRequest{}
	mi := &file_picker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContextRequest) ProtoMessage() {}

func (x *GetContextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_picker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContextRequest.ProtoReflect.Descriptor instead.
func (*GetContextRequest) Descriptor() ([]byte, []int) {
	return file_picker_proto_rawDescGZIP(), []int{2}
}

func (x *GetContextRequest) GetContextName() string {
	if x != nil {
		return x.ContextName
	}
	return ""
}

type ContextInfo struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ContextId      string                 `protobuf:"bytes,1,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Strategy       string                 `protobuf:"bytes,3,opt,name=strategy,proto3" json:"strategy,omitempty"`
	Seed           string                 `protobuf:"bytes,4,opt,name=seed,proto3" json:"seed,omitempty"`
	AvoidRepeat    bool                   `protobuf:"varint,5,opt,name=avoid_repeat,json=avoidRepeat,proto3" json:"avoid_repeat,omitempty"`
	PreviousIndex  int32                  `protobuf:"varint,6,opt,name=previous_index,json=previousIndex,proto3" json:"previous_index,omitempty"`
	Signature      string                 `protobuf:"bytes,7,opt,name=signature,proto3" json:"signature,omitempty"`
	QueueRemaining int32                  `protobuf:"varint,8,opt,name=queue_remaining,json=queueRemaining,proto3" json:"queue_remaining,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ContextInfo) Reset() {
	*x = ContextInfo{}
	mi := &file_picker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContextInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContextInfo) ProtoMessage() {}

func (x *ContextInfo) ProtoReflect() protoreflect.Message {
	mi := &file_picker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContextInfo.ProtoReflect.Descriptor instead.
func (*ContextInfo) Descriptor() ([]byte, []int) {
	return file_picker_proto_rawDescGZIP(), []int{3}
}

func (x *ContextInfo) GetContextId() string {
	if x != nil {
		return x.ContextId
	}
	return ""
}

func (x *ContextInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ContextInfo) GetStrategy() string {
	if x != nil {
		return x.Strategy
	}
	return ""
}

func (x *ContextInfo) GetSeed() string {
	if x != nil {
		return x.Seed
	}
	return ""
}

func (x *ContextInfo) GetAvoidRepeat() bool {
	if x != nil {
		return x.AvoidRepeat
	}
	return false
}

func (x *ContextInfo) GetPreviousIndex() int32 {
	if x != nil {
		return x.PreviousIndex
	}
	return 0
}

func (x *ContextInfo) GetSignature() string {
	if x != nil {
		return x.Signature
	}
	return ""
}

func (x *ContextInfo) GetQueueRemaining() int32 {
	if x != nil {
		return x.QueueRemaining
	}
	return 0
}

type ResetContextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContextName   string                 `protobuf:"bytes,1,opt,name=context_name,json=contextName,proto3" json:"context_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetContextRequest) Reset() {
	*x = ResetContextRequest{}
	mi := &file_picker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetContextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetContextRequest) ProtoMessage() {}

func (x *ResetContextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_picker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetContextRequest.ProtoReflect.Descriptor instead.
func (*ResetContextRequest) Descriptor() ([]byte, []int) {
	return file_picker_proto_rawDescGZIP(), []int{4}
}

func (x *ResetContextRequest) GetContextName() string {
	if x != nil {
		return x.ContextName
	}
	return ""
}

type ResetContextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reset_        bool                   `protobuf:"varint,1,opt,name=reset,proto3" json:"reset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetContextResponse) Reset() {
	*x = ResetContextResponse{}
	mi := &file_picker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetContextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetContextResponse) ProtoMessage() {}

func (x *ResetContextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_picker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetContextResponse.ProtoReflect.Descriptor instead.
func (*ResetContextResponse) Descriptor() ([]byte, []int) {
	return file_picker_proto_rawDescGZIP(), []int{5}
}

func (x *ResetContextResponse) GetReset_() bool {
	if x != nil {
		return x.Reset_
	}
	return false
}

var File_picker_proto protoreflect.FileDescriptor

var file_picker_proto_rawDesc = string([]byte{
	0x0a, 0x0c, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06,
	0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x22, 0xe7, 0x01, 0x0a, 0x0b, 0x50, 0x69, 0x63, 0x6b, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78,
	0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6f,
	0x6e, 0x74, 0x65, 0x78, 0x74, 0x4e, 0x61, 0x6d, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x74, 0x6f, 0x74,
	0x61, 0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x12,
	0x18, 0x0a, 0x07, 0x77, 0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x01,
	0x52, 0x07, 0x77, 0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x74, 0x72,
	0x61, 0x74, 0x65, 0x67, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x73, 0x74, 0x72,
	0x61, 0x74, 0x65, 0x67, 0x79, 0x12, 0x1c, 0x0a, 0x09, 0x73, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75,
	0x72, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x69, 0x67, 0x6e, 0x61, 0x74,
	0x75, 0x72, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x69, 0x74, 0x65, 0x6d, 0x73, 0x18, 0x06, 0x20, 0x03,
	0x28, 0x09, 0x52, 0x05, 0x69, 0x74, 0x65, 0x6d, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x65, 0x65,
	0x64, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x73, 0x65, 0x65, 0x64, 0x12, 0x21, 0x0a,
	0x0c, 0x61, 0x76, 0x6f, 0x69, 0x64, 0x5f, 0x72, 0x65, 0x70, 0x65, 0x61, 0x74, 0x18, 0x08, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x0b, 0x61, 0x76, 0x6f, 0x69, 0x64, 0x52, 0x65, 0x70, 0x65, 0x61, 0x74,
	0x22, 0x5b, 0x0a, 0x0c, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x14, 0x0a, 0x05, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52,
	0x05, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x64,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x64, 0x12, 0x1d,
	0x0a, 0x0a, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x49, 0x64, 0x22, 0x36, 0x0a,
	0x11, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x5f, 0x6e, 0x61,
	0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78,
	0x74, 0x4e, 0x61, 0x6d, 0x65, 0x22, 0x81, 0x02, 0x0a, 0x0b, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78,
	0x74, 0x49, 0x6e, 0x66, 0x6f, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x63, 0x6f, 0x6e, 0x74, 0x65,
	0x78, 0x74, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x74, 0x72, 0x61,
	0x74, 0x65, 0x67, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x73, 0x74, 0x72, 0x61,
	0x74, 0x65, 0x67, 0x79, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x65, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x73, 0x65, 0x65, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x61, 0x76, 0x6f, 0x69,
	0x64, 0x5f, 0x72, 0x65, 0x70, 0x65, 0x61, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b,
	0x61, 0x76, 0x6f, 0x69, 0x64, 0x52, 0x65, 0x70, 0x65, 0x61, 0x74, 0x12, 0x25, 0x0a, 0x0e, 0x70,
	0x72, 0x65, 0x76, 0x69, 0x6f, 0x75, 0x73, 0x5f, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x18, 0x06, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0d, 0x70, 0x72, 0x65, 0x76, 0x69, 0x6f, 0x75, 0x73, 0x49, 0x6e, 0x64,
	0x65, 0x78, 0x12, 0x1c, 0x0a, 0x09, 0x73, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75, 0x72, 0x65, 0x18,
	0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75, 0x72, 0x65,
	0x12, 0x27, 0x0a, 0x0f, 0x71, 0x75, 0x65, 0x75, 0x65, 0x5f, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e,
	0x69, 0x6e, 0x67, 0x18, 0x08, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0e, 0x71, 0x75, 0x65, 0x75, 0x65,
	0x52, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67, 0x22, 0x38, 0x0a, 0x13, 0x52, 0x65, 0x73,
	0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x21, 0x0a, 0x0c, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x4e,
	0x61, 0x6d, 0x65, 0x22, 0x2c, 0x0a, 0x14, 0x52, 0x65, 0x73, 0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74,
	0x65, 0x78, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x72,
	0x65, 0x73, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x05, 0x72, 0x65, 0x73, 0x65,
	0x74, 0x32, 0xcb, 0x01, 0x0a, 0x0d, 0x50, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x53, 0x65, 0x72, 0x76,
	0x69, 0x63, 0x65, 0x12, 0x31, 0x0a, 0x04, 0x50, 0x69, 0x63, 0x6b, 0x12, 0x13, 0x2e, 0x70, 0x69,
	0x63, 0x6b, 0x65, 0x72, 0x2e, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x14, 0x2e, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x2e, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3c, 0x0a, 0x0a, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6e,
	0x74, 0x65, 0x78, 0x74, 0x12, 0x19, 0x2e, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x2e, 0x47, 0x65,
	0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x13, 0x2e, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x2e, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74,
	0x49, 0x6e, 0x66, 0x6f, 0x12, 0x49, 0x0a, 0x0c, 0x52, 0x65, 0x73, 0x65, 0x74, 0x43, 0x6f, 0x6e,
	0x74, 0x65, 0x78, 0x74, 0x12, 0x1b, 0x2e, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x2e, 0x52, 0x65,
	0x73, 0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x1c, 0x2e, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x2e, 0x52, 0x65, 0x73, 0x65, 0x74,
	0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42,
	0x2a, 0x5a, 0x28, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6a, 0x6d,
	0x63, 0x61, 0x72, 0x64, 0x6c, 0x65, 0x2f, 0x70, 0x69, 0x63, 0x6b, 0x77, 0x68, 0x65, 0x65, 0x6c,
	0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x70, 0x69, 0x63, 0x6b, 0x65, 0x72, 0x62, 0x06, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x33,
})

var (
	file_picker_proto_rawDescOnce sync.Once
	file_picker_proto_rawDescData []byte
)

func file_picker_proto_rawDescGZIP() []byte {
	file_picker_proto_rawDescOnce.Do(func() {
		file_picker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_picker_proto_rawDesc), len(file_picker_proto_rawDesc)))
	})
	return file_picker_proto_rawDescData
}

var file_picker_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_picker_proto_goTypes = []any{
	(*PickRequest)(nil),          // 0: picker.PickRequest
	(*PickResponse)(nil),         // 1: picker.PickResponse
	(*GetContextRequest)(nil),    // 2: picker.GetContextRequest
	(*ContextInfo)(nil),          // 3: picker.ContextInfo
	(*ResetContextRequest)(nil),  // 4: picker.ResetContextRequest
	(*ResetContextResponse)(nil), // 5: picker.ResetContextResponse
}
var file_picker_proto_depIdxs = []int32{
	0, // 0: picker.PickerService.Pick:input_type -> picker.PickRequest
	2, // 1: picker.PickerService.GetContext:input_type -> picker.GetContextRequest
	4, // 2: picker.PickerService.ResetContext:input_type -> picker.ResetContextRequest
	1, // 3: picker.PickerService.Pick:output_type -> picker.PickResponse
	3, // 4: picker.PickerService.GetContext:output_type -> picker.ContextInfo
	5, // 5: picker.PickerService.ResetContext:output_type -> picker.ResetContextResponse
	3, // [3:6] is the sub-list for method output_type
	0, // [0:3] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_picker_proto_init() }
func file_picker_proto_init() {
	if File_picker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_picker_proto_rawDesc), len(file_picker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_picker_proto_goTypes,
		DependencyIndexes: file_picker_proto_depIdxs,
		MessageInfos:      file_picker_proto_msgTypes,
	}.Build()
	File_picker_proto = out.File
	file_picker_proto_goTypes = nil
	file_picker_proto_depIdxs = nil
}
