// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: finder/v1/finder.proto

package finderv1

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

type WorkItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ChatId        string                 `protobuf:"bytes,2,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	OrderId       string                 `protobuf:"bytes,3,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Result        string                 `protobuf:"bytes,5,opt,name=result,proto3" json:"result,omitempty"`
	ErrorDetail   string                 `protobuf:"bytes,6,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WorkItem) Reset() {
	*x = WorkItem{}
	mi := &file_finder_v1_finder_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WorkItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WorkItem) ProtoMessage() {}

func (x *WorkItem) ProtoReflect() protoreflect.Message {
	mi := &file_finder_v1_finder_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WorkItem.ProtoReflect.Descriptor instead.
func (*WorkItem) Descriptor() ([]byte, []int) {
	return file_finder_v1_finder_proto_rawDescGZIP(), []int{0}
}

func (x *WorkItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WorkItem) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

func (x *WorkItem) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *WorkItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *WorkItem) GetResult() string {
	if x != nil {
		return x.Result
	}
	return ""
}

func (x *WorkItem) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

func (x *WorkItem) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *WorkItem) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *WorkItem) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type SubmitLookupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        string                 `protobuf:"bytes,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	OrderId       string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitLookupRequest) Reset() {
	*x = SubmitLookupRequest{}
	mi := &file_finder_v1_finder_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitLookupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitLookupRequest) ProtoMessage() {}

func (x *SubmitLookupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finder_v1_finder_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitLookupRequest.ProtoReflect.Descriptor instead.
func (*SubmitLookupRequest) Descriptor() ([]byte, []int) {
	return file_finder_v1_finder_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitLookupRequest) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

func (x *SubmitLookupRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type SubmitLookupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *WorkItem              `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitLookupResponse) Reset() {
	*x = SubmitLookupResponse{}
	mi := &file_finder_v1_finder_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitLookupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitLookupResponse) ProtoMessage() {}

func (x *SubmitLookupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finder_v1_finder_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitLookupResponse.ProtoReflect.Descriptor instead.
func (*SubmitLookupResponse) Descriptor() ([]byte, []int) {
	return file_finder_v1_finder_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitLookupResponse) GetItem() *WorkItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type GetWorkItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWorkItemRequest) Reset() {
	*x = GetWorkItemRequest{}
	mi := &file_finder_v1_finder_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWorkItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWorkItemRequest) ProtoMessage() {}

func (x *GetWorkItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finder_v1_finder_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWorkItemRequest.ProtoReflect.Descriptor instead.
func (*GetWorkItemRequest) Descriptor() ([]byte, []int) {
	return file_finder_v1_finder_proto_rawDescGZIP(), []int{3}
}

func (x *GetWorkItemRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetWorkItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *WorkItem              `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWorkItemResponse) Reset() {
	*x = GetWorkItemResponse{}
	mi := &file_finder_v1_finder_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWorkItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWorkItemResponse) ProtoMessage() {}

func (x *GetWorkItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finder_v1_finder_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWorkItemResponse.ProtoReflect.Descriptor instead.
func (*GetWorkItemResponse) Descriptor() ([]byte, []int) {
	return file_finder_v1_finder_proto_rawDescGZIP(), []int{4}
}

func (x *GetWorkItemResponse) GetItem() *WorkItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type ListWorkItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWorkItemsRequest) Reset() {
	*x = ListWorkItemsRequest{}
	mi := &file_finder_v1_finder_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWorkItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWorkItemsRequest) ProtoMessage() {}

func (x *ListWorkItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finder_v1_finder_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWorkItemsRequest.ProtoReflect.Descriptor instead.
func (*ListWorkItemsRequest) Descriptor() ([]byte, []int) {
	return file_finder_v1_finder_proto_rawDescGZIP(), []int{5}
}

func (x *ListWorkItemsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListWorkItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*WorkItem            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWorkItemsResponse) Reset() {
	*x = ListWorkItemsResponse{}
	mi := &file_finder_v1_finder_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWorkItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWorkItemsResponse) ProtoMessage() {}

func (x *ListWorkItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finder_v1_finder_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWorkItemsResponse.ProtoReflect.Descriptor instead.
func (*ListWorkItemsResponse) Descriptor() ([]byte, []int) {
	return file_finder_v1_finder_proto_rawDescGZIP(), []int{6}
}

func (x *ListWorkItemsResponse) GetItems() []*WorkItem {
	if x != nil {
		return x.Items
	}
	return nil
}

var File_finder_v1_finder_proto protoreflect.FileDescriptor

const file_finder_v1_finder_proto_rawDesc = "" +
	"\n" +
	"\x16finder/v1/finder.proto\x12\tfinder.v1\"\x80\x02\n" +
	"\bWorkItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\achat_id\x18\x02 \x01(\tR\x06chatId\x12\x19\n" +
	"\border_id\x18\x03 \x01(\tR\aorderId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x16\n" +
	"\x06result\x18\x05 \x01(\tR\x06result\x12!\n" +
	"\ferror_detail\x18\x06 \x01(\tR\verrorDetail\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\"I\n" +
	"\x13SubmitLookupRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\tR\x06chatId\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\"?\n" +
	"\x14SubmitLookupResponse\x12'\n" +
	"\x04item\x18\x01 \x01(\v2\x13.finder.v1.WorkItemR\x04item\"$\n" +
	"\x12GetWorkItemRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\">\n" +
	"\x13GetWorkItemResponse\x12'\n" +
	"\x04item\x18\x01 \x01(\v2\x13.finder.v1.WorkItemR\x04item\",\n" +
	"\x14ListWorkItemsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"B\n" +
	"\x15ListWorkItemsResponse\x12)\n" +
	"\x05items\x18\x01 \x03(\v2\x13.finder.v1.WorkItemR\x05items2\x82\x02\n" +
	"\rFinderService\x12O\n" +
	"\fSubmitLookup\x12\x1e.finder.v1.SubmitLookupRequest\x1a\x1f.finder.v1.SubmitLookupResponse\x12L\n" +
	"\vGetWorkItem\x12\x1d.finder.v1.GetWorkItemRequest\x1a\x1e.finder.v1.GetWorkItemResponse\x12R\n" +
	"\rListWorkItems\x12\x1f.finder.v1.ListWorkItemsRequest\x1a .finder.v1.ListWorkItemsResponseBDZBgithub.com/pavel-marchuk/order-finder/gen/proto/finder/v1;finderv1b\x06proto3"

var (
	file_finder_v1_finder_proto_rawDescOnce sync.Once
	file_finder_v1_finder_proto_rawDescData []byte
)

func file_finder_v1_finder_proto_rawDescGZIP() []byte {
	file_finder_v1_finder_proto_rawDescOnce.Do(func() {
		file_finder_v1_finder_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_finder_v1_finder_proto_rawDesc), len(file_finder_v1_finder_proto_rawDesc)))
	})
	return file_finder_v1_finder_proto_rawDescData
}

var file_finder_v1_finder_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_finder_v1_finder_proto_goTypes = []any{
	(*WorkItem)(nil),              // 0: finder.v1.WorkItem
	(*SubmitLookupRequest)(nil),   // 1: finder.v1.SubmitLookupRequest
	(*SubmitLookupResponse)(nil),  // 2: finder.v1.SubmitLookupResponse
	(*GetWorkItemRequest)(nil),    // 3: finder.v1.GetWorkItemRequest
	(*GetWorkItemResponse)(nil),   // 4: finder.v1.GetWorkItemResponse
	(*ListWorkItemsRequest)(nil),  // 5: finder.v1.ListWorkItemsRequest
	(*ListWorkItemsResponse)(nil), // 6: finder.v1.ListWorkItemsResponse
}
var file_finder_v1_finder_proto_depIdxs = []int32{
	0, // 0: finder.v1.SubmitLookupResponse.item:type_name -> finder.v1.WorkItem
	0, // 1: finder.v1.GetWorkItemResponse.item:type_name -> finder.v1.WorkItem
	0, // 2: finder.v1.ListWorkItemsResponse.items:type_name -> finder.v1.WorkItem
	1, // 3: finder.v1.FinderService.SubmitLookup:input_type -> finder.v1.SubmitLookupRequest
	3, // 4: finder.v1.FinderService.GetWorkItem:input_type -> finder.v1.GetWorkItemRequest
	5, // 5: finder.v1.FinderService.ListWorkItems:input_type -> finder.v1.ListWorkItemsRequest
	2, // 6: finder.v1.FinderService.SubmitLookup:output_type -> finder.v1.SubmitLookupResponse
	4, // 7: finder.v1.FinderService.GetWorkItem:output_type -> finder.v1.GetWorkItemResponse
	6, // 8: finder.v1.FinderService.ListWorkItems:output_type -> finder.v1.ListWorkItemsResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_finder_v1_finder_proto_init() }
func file_finder_v1_finder_proto_init() {
	if File_finder_v1_finder_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_finder_v1_finder_proto_rawDesc), len(file_finder_v1_finder_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_finder_v1_finder_proto_goTypes,
		DependencyIndexes: file_finder_v1_finder_proto_depIdxs,
		MessageInfos:      file_finder_v1_finder_proto_msgTypes,
	}.Build()
	File_finder_v1_finder_proto = out.File
	file_finder_v1_finder_proto_goTypes = nil
	file_finder_v1_finder_proto_depIdxs = nil
}
