package grpcserver

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "osprey/api/pb"
	"osprey/domain/orderbook"
	"osprey/service"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedOrderServiceServer
	svc *service.OrderService
	log *zap.Logger
}

func NewServer(svc *service.OrderService, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(
	ctx context.Context,
	req *pb.PlaceOrderRequest,
) (*pb.PlaceOrderResponse, error) {
	if req.OrderId == 0 {
		return nil, status.Error(codes.InvalidArgument, "order_id must be non-zero")
	}
	if req.Qty <= 0 {
		return nil, status.Error(codes.InvalidArgument, "qty must be positive")
	}

	side := toSide(req.Side)
	otype := toType(req.Type)

	seq, err := s.svc.PlaceOrder(req.OrderId, side, otype, req.Price, req.Qty)
	if err != nil {
		s.log.Error("place order failed",
			zap.Uint64("order_id", req.OrderId),
			zap.Error(err),
		)
		return nil, status.Error(codes.Unavailable, "order not accepted")
	}

	s.log.Debug("place order",
		zap.Uint64("order_id", req.OrderId),
		zap.Stringer("side", side),
		zap.Stringer("type", otype),
		zap.Int64("price", req.Price),
		zap.Int64("qty", req.Qty),
		zap.Uint64("seq", seq),
	)

	return &pb.PlaceOrderResponse{
		Status: "ok",
		SeqId:  seq,
	}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	if req.OrderId == 0 {
		return nil, status.Error(codes.InvalidArgument, "order_id must be non-zero")
	}

	seq, err := s.svc.CancelOrder(req.OrderId)
	if err != nil {
		s.log.Error("cancel order failed",
			zap.Uint64("order_id", req.OrderId),
			zap.Error(err),
		)
		return nil, status.Error(codes.Unavailable, "cancel not accepted")
	}

	s.log.Debug("cancel order",
		zap.Uint64("order_id", req.OrderId),
		zap.Uint64("seq", seq),
	)

	return &pb.CancelOrderResponse{
		Status: "ok",
		SeqId:  seq,
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetSnapshot(
	ctx context.Context,
	req *pb.SnapshotRequest,
) (*pb.SnapshotResponse, error) {
	orders := s.svc.Snapshot()

	resp := &pb.SnapshotResponse{
		Orders:  make([]*pb.OrderEntry, 0, len(orders)),
		LastSeq: s.svc.LastSeq(),
	}

	for _, o := range orders {
		resp.Orders = append(resp.Orders, &pb.OrderEntry{
			Id:     o.ID,
			Side:   fromSide(o.Side),
			Type:   fromType(o.Type),
			Price:  o.Price,
			Qty:    o.Qty,
			Filled: o.Filled,
		})
	}

	return resp, nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_SIDE_ASK {
		return orderbook.Ask
	}
	return orderbook.Bid
}

func toType(t pb.OrderType) orderbook.OrderType {
	if t == pb.OrderType_ORDER_TYPE_MARKET {
		return orderbook.Market
	}
	return orderbook.Limit
}

func fromSide(s orderbook.Side) pb.Side {
	if s == orderbook.Ask {
		return pb.Side_SIDE_ASK
	}
	return pb.Side_SIDE_BID
}

func fromType(t orderbook.OrderType) pb.OrderType {
	if t == orderbook.Market {
		return pb.OrderType_ORDER_TYPE_MARKET
	}
	return pb.OrderType_ORDER_TYPE_LIMIT
}
