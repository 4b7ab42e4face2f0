package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/card-forge/internal/engine"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
)

// Service and method names of the card set API
const (
	CardSetServiceName                = "cardforge.api.v1alpha1.CardSetService"
	CardSetServiceGenerateCardSetName = "/" + CardSetServiceName + "/GenerateCardSet"
)

// Request fields
const (
	FieldDescription = "description"
)

// CardSetServiceServer is the server API for the card set service.
// Messages are google.protobuf.Struct documents.
type CardSetServiceServer interface {
	GenerateCardSet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// CardSetServiceDesc describes the card set service for grpc registration
var CardSetServiceDesc = grpc.ServiceDesc{
	ServiceName: CardSetServiceName,
	HandlerType: (*CardSetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateCardSet",
			Handler:    generateCardSetHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cardforge/api/v1alpha1/card_set.proto",
}

// RegisterCardSetServiceServer registers srv on s
func RegisterCardSetServiceServer(s grpc.ServiceRegistrar, srv CardSetServiceServer) {
	s.RegisterService(&CardSetServiceDesc, srv)
}

func generateCardSetHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardSetServiceServer).GenerateCardSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CardSetServiceGenerateCardSetName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardSetServiceServer).GenerateCardSet(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// CardSetServiceClient is the client API for the card set service
type CardSetServiceClient interface {
	GenerateCardSet(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type cardSetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCardSetServiceClient creates a client on an established connection
func NewCardSetServiceClient(cc grpc.ClientConnInterface) CardSetServiceClient {
	return &cardSetServiceClient{cc: cc}
}

func (c *cardSetServiceClient) GenerateCardSet(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CardSetServiceGenerateCardSetName, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateCardSetResponse is the document returned by GenerateCardSet
type GenerateCardSetResponse struct {
	GenerationID   string                        `json:"generation_id"`
	CardSet        *cards.CardSet                `json:"card_set"`
	EffectiveStats *engine.EffectiveStats        `json:"effective_stats"`
	Compatibility  []*engine.CompatibilityResult `json:"compatibility"`
}

// NewGenerateCardSetRequest builds a request document
func NewGenerateCardSetRequest(description string) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			FieldDescription: structpb.NewStringValue(description),
		},
	}
}

// EncodeGenerateCardSetResponse converts a response into its document form
func EncodeGenerateCardSetResponse(resp *GenerateCardSetResponse) (*structpb.Struct, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal card set response")
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to convert card set response")
	}

	out, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build card set document")
	}
	return out, nil
}

// DecodeGenerateCardSetResponse reads a response document
func DecodeGenerateCardSetResponse(doc *structpb.Struct) (*GenerateCardSetResponse, error) {
	if doc == nil {
		return nil, errors.InvalidArgument("response document is required")
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal card set document")
	}

	var resp GenerateCardSetResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "malformed card set document")
	}
	return &resp, nil
}
