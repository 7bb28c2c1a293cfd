// Hand-maintained equivalent of the protoc-gen-go output for test.proto, so
// the fixture has no build-time dependency on protoc. The raw descriptor is
// assembled from a descriptorpb literal instead of embedded bytes; everything
// else follows the generated shape. Keep this in sync with test.proto.

package g2htesting

import (
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PaymentStatus int32

const (
	PaymentStatus_SUCCESS PaymentStatus = 0
	PaymentStatus_PENDING PaymentStatus = 1
	PaymentStatus_FAILURE PaymentStatus = 2
)

var (
	PaymentStatus_name = map[int32]string{
		0: "SUCCESS",
		1: "PENDING",
		2: "FAILURE",
	}
	PaymentStatus_value = map[string]int32{
		"SUCCESS": 0,
		"PENDING": 1,
		"FAILURE": 2,
	}
)

func (x PaymentStatus) Enum() *PaymentStatus {
	p := new(PaymentStatus)
	*p = x
	return p
}

func (x PaymentStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PaymentStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_test_proto_enumTypes[0].Descriptor()
}

func (PaymentStatus) Type() protoreflect.EnumType {
	return &file_test_proto_enumTypes[0]
}

func (x PaymentStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

type AuthenticationStatus int32

const (
	AuthenticationStatus_AUTHENTICATION_SUCCESS AuthenticationStatus = 0
	AuthenticationStatus_AUTHENTICATION_PENDING AuthenticationStatus = 1
	AuthenticationStatus_AUTHENTICATION_FAILURE AuthenticationStatus = 2
)

var (
	AuthenticationStatus_name = map[int32]string{
		0: "AUTHENTICATION_SUCCESS",
		1: "AUTHENTICATION_PENDING",
		2: "AUTHENTICATION_FAILURE",
	}
	AuthenticationStatus_value = map[string]int32{
		"AUTHENTICATION_SUCCESS": 0,
		"AUTHENTICATION_PENDING": 1,
		"AUTHENTICATION_FAILURE": 2,
	}
)

func (x AuthenticationStatus) Enum() *AuthenticationStatus {
	p := new(AuthenticationStatus)
	*p = x
	return p
}

func (x AuthenticationStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (AuthenticationStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_test_proto_enumTypes[1].Descriptor()
}

func (AuthenticationStatus) Type() protoreflect.EnumType {
	return &file_test_proto_enumTypes[1]
}

func (x AuthenticationStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

type ProcessingStatus int32

const (
	ProcessingStatus_IDLE       ProcessingStatus = 0
	ProcessingStatus_PROCESSING ProcessingStatus = 1
	ProcessingStatus_COMPLETED  ProcessingStatus = 2
)

var (
	ProcessingStatus_name = map[int32]string{
		0: "IDLE",
		1: "PROCESSING",
		2: "COMPLETED",
	}
	ProcessingStatus_value = map[string]int32{
		"IDLE":       0,
		"PROCESSING": 1,
		"COMPLETED":  2,
	}
)

func (x ProcessingStatus) Enum() *ProcessingStatus {
	p := new(ProcessingStatus)
	*p = x
	return p
}

func (x ProcessingStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ProcessingStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_test_proto_enumTypes[2].Descriptor()
}

func (ProcessingStatus) Type() protoreflect.EnumType {
	return &file_test_proto_enumTypes[2]
}

func (x ProcessingStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

type HelloReply_Result_Outcome int32

const (
	HelloReply_Result_UNKNOWN   HelloReply_Result_Outcome = 0
	HelloReply_Result_OK_RESULT HelloReply_Result_Outcome = 1
	HelloReply_Result_FAILED    HelloReply_Result_Outcome = 2
)

var (
	HelloReply_Result_Outcome_name = map[int32]string{
		0: "UNKNOWN",
		1: "OK_RESULT",
		2: "FAILED",
	}
	HelloReply_Result_Outcome_value = map[string]int32{
		"UNKNOWN":   0,
		"OK_RESULT": 1,
		"FAILED":    2,
	}
)

func (x HelloReply_Result_Outcome) Enum() *HelloReply_Result_Outcome {
	p := new(HelloReply_Result_Outcome)
	*p = x
	return p
}

func (x HelloReply_Result_Outcome) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (HelloReply_Result_Outcome) Descriptor() protoreflect.EnumDescriptor {
	return file_test_proto_enumTypes[3].Descriptor()
}

func (HelloReply_Result_Outcome) Type() protoreflect.EnumType {
	return &file_test_proto_enumTypes[3]
}

func (x HelloReply_Result_Outcome) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

type HelloRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name          string        `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	PaymentStatus PaymentStatus `protobuf:"varint,2,opt,name=payment_status,json=paymentStatus,proto3,enum=g2htesting.PaymentStatus" json:"payment_status,omitempty"`
	Code          int32         `protobuf:"varint,3,opt,name=code,proto3" json:"code,omitempty"`
}

func (x *HelloRequest) Reset() {
	*x = HelloRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_test_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *HelloRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HelloRequest) ProtoMessage() {}

func (x *HelloRequest) ProtoReflect() protoreflect.Message {
	mi := &file_test_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *HelloRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *HelloRequest) GetPaymentStatus() PaymentStatus {
	if x != nil {
		return x.PaymentStatus
	}
	return PaymentStatus_SUCCESS
}

func (x *HelloRequest) GetCode() int32 {
	if x != nil {
		return x.Code
	}
	return 0
}

type HelloReply struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Message string             `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Result  *HelloReply_Result `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"`
}

func (x *HelloReply) Reset() {
	*x = HelloReply{}
	if protoimpl.UnsafeEnabled {
		mi := &file_test_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *HelloReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HelloReply) ProtoMessage() {}

func (x *HelloReply) ProtoReflect() protoreflect.Message {
	mi := &file_test_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *HelloReply) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *HelloReply) GetResult() *HelloReply_Result {
	if x != nil {
		return x.Result
	}
	return nil
}

type ConflictProbe struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Payment        PaymentStatus        `protobuf:"varint,1,opt,name=payment,proto3,enum=g2htesting.PaymentStatus" json:"payment,omitempty"`
	Authentication AuthenticationStatus `protobuf:"varint,2,opt,name=authentication,proto3,enum=g2htesting.AuthenticationStatus" json:"authentication,omitempty"`
	History        []ProcessingStatus   `protobuf:"varint,3,rep,packed,name=history,proto3,enum=g2htesting.ProcessingStatus" json:"history,omitempty"`
	Fallback       *PaymentStatus       `protobuf:"varint,4,opt,name=fallback,proto3,enum=g2htesting.PaymentStatus,oneof" json:"fallback,omitempty"`
}

func (x *ConflictProbe) Reset() {
	*x = ConflictProbe{}
	if protoimpl.UnsafeEnabled {
		mi := &file_test_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ConflictProbe) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConflictProbe) ProtoMessage() {}

func (x *ConflictProbe) ProtoReflect() protoreflect.Message {
	mi := &file_test_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ConflictProbe) GetPayment() PaymentStatus {
	if x != nil {
		return x.Payment
	}
	return PaymentStatus_SUCCESS
}

func (x *ConflictProbe) GetAuthentication() AuthenticationStatus {
	if x != nil {
		return x.Authentication
	}
	return AuthenticationStatus_AUTHENTICATION_SUCCESS
}

func (x *ConflictProbe) GetHistory() []ProcessingStatus {
	if x != nil {
		return x.History
	}
	return nil
}

func (x *ConflictProbe) GetFallback() PaymentStatus {
	if x != nil && x.Fallback != nil {
		return *x.Fallback
	}
	return PaymentStatus_SUCCESS
}

type HelloReply_Result struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProcessingStatus ProcessingStatus          `protobuf:"varint,1,opt,name=processing_status,json=processingStatus,proto3,enum=g2htesting.ProcessingStatus" json:"processing_status,omitempty"`
	Detail           string                    `protobuf:"bytes,2,opt,name=detail,proto3" json:"detail,omitempty"`
	Outcome          HelloReply_Result_Outcome `protobuf:"varint,3,opt,name=outcome,proto3,enum=g2htesting.HelloReply.Result.Outcome" json:"outcome,omitempty"`
}

func (x *HelloReply_Result) Reset() {
	*x = HelloReply_Result{}
	if protoimpl.UnsafeEnabled {
		mi := &file_test_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *HelloReply_Result) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HelloReply_Result) ProtoMessage() {}

func (x *HelloReply_Result) ProtoReflect() protoreflect.Message {
	mi := &file_test_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *HelloReply_Result) GetProcessingStatus() ProcessingStatus {
	if x != nil {
		return x.ProcessingStatus
	}
	return ProcessingStatus_IDLE
}

func (x *HelloReply_Result) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

func (x *HelloReply_Result) GetOutcome() HelloReply_Result_Outcome {
	if x != nil {
		return x.Outcome
	}
	return HelloReply_Result_UNKNOWN
}

var File_test_proto protoreflect.FileDescriptor

// fileDescriptorProto spells out what the embedded rawDesc bytes of a
// protoc-generated file encode.
func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	optional := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	repeated := descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	typeString := descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
	typeInt32 := descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()
	typeEnum := descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum()
	typeMessage := descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()

	return &descriptorpb.FileDescriptorProto{
		Syntax:  proto.String("proto3"),
		Name:    proto.String("test.proto"),
		Package: proto.String("g2htesting"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/juspay/g2h/g2htesting"),
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{
				Name: proto.String("PaymentStatus"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: proto.String("SUCCESS"), Number: proto.Int32(0)},
					{Name: proto.String("PENDING"), Number: proto.Int32(1)},
					{Name: proto.String("FAILURE"), Number: proto.Int32(2)},
				},
			},
			{
				Name: proto.String("AuthenticationStatus"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: proto.String("AUTHENTICATION_SUCCESS"), Number: proto.Int32(0)},
					{Name: proto.String("AUTHENTICATION_PENDING"), Number: proto.Int32(1)},
					{Name: proto.String("AUTHENTICATION_FAILURE"), Number: proto.Int32(2)},
				},
			},
			{
				Name: proto.String("ProcessingStatus"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: proto.String("IDLE"), Number: proto.Int32(0)},
					{Name: proto.String("PROCESSING"), Number: proto.Int32(1)},
					{Name: proto.String("COMPLETED"), Number: proto.Int32(2)},
				},
			},
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("HelloRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("name"), Number: proto.Int32(1), Label: optional, Type: typeString, JsonName: proto.String("name")},
					{Name: proto.String("payment_status"), Number: proto.Int32(2), Label: optional, Type: typeEnum, TypeName: proto.String(".g2htesting.PaymentStatus"), JsonName: proto.String("paymentStatus")},
					{Name: proto.String("code"), Number: proto.Int32(3), Label: optional, Type: typeInt32, JsonName: proto.String("code")},
				},
			},
			{
				Name: proto.String("HelloReply"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("message"), Number: proto.Int32(1), Label: optional, Type: typeString, JsonName: proto.String("message")},
					{Name: proto.String("result"), Number: proto.Int32(2), Label: optional, Type: typeMessage, TypeName: proto.String(".g2htesting.HelloReply.Result"), JsonName: proto.String("result")},
				},
				NestedType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("Result"),
						Field: []*descriptorpb.FieldDescriptorProto{
							{Name: proto.String("processing_status"), Number: proto.Int32(1), Label: optional, Type: typeEnum, TypeName: proto.String(".g2htesting.ProcessingStatus"), JsonName: proto.String("processingStatus")},
							{Name: proto.String("detail"), Number: proto.Int32(2), Label: optional, Type: typeString, JsonName: proto.String("detail")},
							{Name: proto.String("outcome"), Number: proto.Int32(3), Label: optional, Type: typeEnum, TypeName: proto.String(".g2htesting.HelloReply.Result.Outcome"), JsonName: proto.String("outcome")},
						},
						EnumType: []*descriptorpb.EnumDescriptorProto{
							{
								Name: proto.String("Outcome"),
								Value: []*descriptorpb.EnumValueDescriptorProto{
									{Name: proto.String("UNKNOWN"), Number: proto.Int32(0)},
									{Name: proto.String("OK_RESULT"), Number: proto.Int32(1)},
									{Name: proto.String("FAILED"), Number: proto.Int32(2)},
								},
							},
						},
					},
				},
			},
			{
				Name: proto.String("ConflictProbe"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("payment"), Number: proto.Int32(1), Label: optional, Type: typeEnum, TypeName: proto.String(".g2htesting.PaymentStatus"), JsonName: proto.String("payment")},
					{Name: proto.String("authentication"), Number: proto.Int32(2), Label: optional, Type: typeEnum, TypeName: proto.String(".g2htesting.AuthenticationStatus"), JsonName: proto.String("authentication")},
					{Name: proto.String("history"), Number: proto.Int32(3), Label: repeated, Type: typeEnum, TypeName: proto.String(".g2htesting.ProcessingStatus"), JsonName: proto.String("history")},
					{Name: proto.String("fallback"), Number: proto.Int32(4), Label: optional, Type: typeEnum, TypeName: proto.String(".g2htesting.PaymentStatus"), JsonName: proto.String("fallback"), Proto3Optional: proto.Bool(true), OneofIndex: proto.Int32(0)},
				},
				OneofDecl: []*descriptorpb.OneofDescriptorProto{
					{Name: proto.String("_fallback")},
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("Greeter"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{Name: proto.String("SayHello"), InputType: proto.String(".g2htesting.HelloRequest"), OutputType: proto.String(".g2htesting.HelloReply")},
					{Name: proto.String("CheckConflicts"), InputType: proto.String(".g2htesting.ConflictProbe"), OutputType: proto.String(".g2htesting.ConflictProbe")},
				},
			},
		},
	}
}

var file_test_proto_enumTypes = make([]protoimpl.EnumInfo, 4)
var file_test_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_test_proto_goTypes = []interface{}{
	(PaymentStatus)(0),             // 0: g2htesting.PaymentStatus
	(AuthenticationStatus)(0),      // 1: g2htesting.AuthenticationStatus
	(ProcessingStatus)(0),          // 2: g2htesting.ProcessingStatus
	(HelloReply_Result_Outcome)(0), // 3: g2htesting.HelloReply.Result.Outcome
	(*HelloRequest)(nil),           // 4: g2htesting.HelloRequest
	(*HelloReply)(nil),             // 5: g2htesting.HelloReply
	(*ConflictProbe)(nil),          // 6: g2htesting.ConflictProbe
	(*HelloReply_Result)(nil),      // 7: g2htesting.HelloReply.Result
}
var file_test_proto_depIdxs = []int32{
	0,  // 0: g2htesting.HelloRequest.payment_status:type_name -> g2htesting.PaymentStatus
	7,  // 1: g2htesting.HelloReply.result:type_name -> g2htesting.HelloReply.Result
	0,  // 2: g2htesting.ConflictProbe.payment:type_name -> g2htesting.PaymentStatus
	1,  // 3: g2htesting.ConflictProbe.authentication:type_name -> g2htesting.AuthenticationStatus
	2,  // 4: g2htesting.ConflictProbe.history:type_name -> g2htesting.ProcessingStatus
	0,  // 5: g2htesting.ConflictProbe.fallback:type_name -> g2htesting.PaymentStatus
	2,  // 6: g2htesting.HelloReply.Result.processing_status:type_name -> g2htesting.ProcessingStatus
	3,  // 7: g2htesting.HelloReply.Result.outcome:type_name -> g2htesting.HelloReply.Result.Outcome
	4,  // 8: g2htesting.Greeter.SayHello:input_type -> g2htesting.HelloRequest
	6,  // 9: g2htesting.Greeter.CheckConflicts:input_type -> g2htesting.ConflictProbe
	5,  // 10: g2htesting.Greeter.SayHello:output_type -> g2htesting.HelloReply
	6,  // 11: g2htesting.Greeter.CheckConflicts:output_type -> g2htesting.ConflictProbe
	10, // [10:12] is the sub-list for method output_type
	8,  // [8:10] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_test_proto_init() }
func file_test_proto_init() {
	if File_test_proto != nil {
		return
	}
	rawDesc, err := proto.Marshal(fileDescriptorProto())
	if err != nil {
		panic(err)
	}
	if !protoimpl.UnsafeEnabled {
		file_test_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*HelloRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_test_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*HelloReply); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_test_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ConflictProbe); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_test_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*HelloReply_Result); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	file_test_proto_msgTypes[2].OneofWrappers = []interface{}{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: rawDesc,
			NumEnums:      4,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_test_proto_goTypes,
		DependencyIndexes: file_test_proto_depIdxs,
		EnumInfos:         file_test_proto_enumTypes,
		MessageInfos:      file_test_proto_msgTypes,
	}.Build()
	File_test_proto = out.File
	file_test_proto_goTypes = nil
	file_test_proto_depIdxs = nil
}
