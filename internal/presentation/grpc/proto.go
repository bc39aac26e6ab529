package grpc

// proto.go defines the gRPC server interface derived from
// agri/scoring/v1/scoring.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with
// the generated package import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
)

// ScoreRequest scores a single applicant.
type ScoreRequest struct {
	Applicant dto.ApplicantProfile `json:"applicant"`
}

// ScoreResponse carries the full decision.
type ScoreResponse struct {
	Decision dto.ScoreResponse `json:"decision"`
}

// RecommendProductRequest asks for the product ranking only.
type RecommendProductRequest struct {
	Applicant dto.ApplicantProfile `json:"applicant"`
}

// RecommendProductResponse carries the ranked recommendation.
type RecommendProductResponse struct {
	Recommendation dto.ProductRecommendationResponse `json:"recommendation"`
}

// BatchScoreRequest scores many applicants in one call.
type BatchScoreRequest struct {
	Applicants []dto.ApplicantProfile `json:"applicants"`
}

// BatchScoreResponse carries per-item results and the aggregate summary.
type BatchScoreResponse struct {
	Batch dto.BatchScoreResponse `json:"batch"`
}

// ScoringServiceServer is the server API for ScoringService.
// It mirrors the proto interface from agri.scoring.v1.ScoringService.
type ScoringServiceServer interface {
	Score(context.Context, *ScoreRequest) (*ScoreResponse, error)
	RecommendProduct(context.Context, *RecommendProductRequest) (*RecommendProductResponse, error)
	BatchScore(context.Context, *BatchScoreRequest) (*BatchScoreResponse, error)
	mustEmbedUnimplementedScoringServiceServer()
}

// UnimplementedScoringServiceServer provides forward-compatible default implementations.
type UnimplementedScoringServiceServer struct{}

func (UnimplementedScoringServiceServer) Score(context.Context, *ScoreRequest) (*ScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Score not implemented")
}
func (UnimplementedScoringServiceServer) RecommendProduct(context.Context, *RecommendProductRequest) (*RecommendProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecommendProduct not implemented")
}
func (UnimplementedScoringServiceServer) BatchScore(context.Context, *BatchScoreRequest) (*BatchScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BatchScore not implemented")
}
func (UnimplementedScoringServiceServer) mustEmbedUnimplementedScoringServiceServer() {}

// RegisterScoringServiceServer registers the ScoringServiceServer with the gRPC server.
func RegisterScoringServiceServer(s *grpclib.Server, srv ScoringServiceServer) {
	s.RegisterService(&_ScoringService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _ScoringService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "agri.scoring.v1.ScoringService",
	HandlerType: (*ScoringServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Score", Handler: _ScoringService_Score_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "RecommendProduct", Handler: _ScoringService_RecommendProduct_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "BatchScore", Handler: _ScoringService_BatchScore_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _ScoringService_Score_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoringServiceServer).Score(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agri.scoring.v1.ScoringService/Score",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoringServiceServer).Score(ctx, req.(*ScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ScoringService_RecommendProduct_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecommendProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoringServiceServer).RecommendProduct(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agri.scoring.v1.ScoringService/RecommendProduct",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoringServiceServer).RecommendProduct(ctx, req.(*RecommendProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ScoringService_BatchScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoringServiceServer).BatchScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/agri.scoring.v1.ScoringService/BatchScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoringServiceServer).BatchScore(ctx, req.(*BatchScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}
