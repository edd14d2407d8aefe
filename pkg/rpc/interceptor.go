// Package rpc provides gRPC interceptors that log unary calls with their
// protobuf payloads masked.
package rpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/codeready-toolchain/jsonmask/pkg/masking"
)

var marshalOptions = protojson.MarshalOptions{UseProtoNames: true}

// UnaryServerInterceptor logs every handled unary call with its request and
// response masked by svc. Failed calls are logged at warn level.
func UnaryServerInterceptor(logger *slog.Logger, svc *masking.Service) grpc.UnaryServerInterceptor {
	l := newCallLogger(logger, svc)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		l.log(ctx, "gRPC request handled", info.FullMethod, req, resp, err, start)
		return resp, err
	}
}

// UnaryClientInterceptor logs every outgoing unary call with its request and
// reply masked by svc.
func UnaryClientInterceptor(logger *slog.Logger, svc *masking.Service) grpc.UnaryClientInterceptor {
	l := newCallLogger(logger, svc)
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		l.log(ctx, "gRPC call completed", method, req, reply, err, start)
		return err
	}
}

type callLogger struct {
	logger *slog.Logger
	svc    *masking.Service
}

func newCallLogger(logger *slog.Logger, svc *masking.Service) *callLogger {
	if logger == nil {
		logger = slog.Default()
	}
	if svc == nil {
		svc = masking.NewService(nil)
	}
	return &callLogger{logger: logger, svc: svc}
}

func (l *callLogger) log(ctx context.Context, msg, method string, req, resp any, err error, start time.Time) {
	level := slog.LevelInfo
	attrs := []any{
		"method", method,
		"code", status.Code(err).String(),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	attrs = l.appendPayload(attrs, "request", req)
	if err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, "error", err)
	} else {
		attrs = l.appendPayload(attrs, "response", resp)
	}
	l.logger.Log(ctx, level, msg, attrs...)
}

// appendPayload adds the masked protojson form of payload under key.
// Payloads that are not proto messages are omitted.
func (l *callLogger) appendPayload(attrs []any, key string, payload any) []any {
	msg, ok := payload.(proto.Message)
	if !ok || msg == nil {
		return attrs
	}
	b, err := marshalOptions.Marshal(msg)
	if err != nil {
		return append(attrs, key+"_error", err.Error())
	}
	return append(attrs, key, l.svc.LogValue(string(b)))
}
