package evaluator

import (
	"context"
	"fmt"

	pb "github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/gen/oracle"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// #region client-struct

// OracleClient wraps the gRPC connection to the high-precision
// evaluation service (the mpmath side).
type OracleClient struct {
	conn   *grpc.ClientConn
	client pb.ZetaOracleClient
}

var _ Evaluator = (*OracleClient)(nil)

// #endregion client-struct

// #region constructor

// NewOracleClient connects to the evaluation gRPC server.
func NewOracleClient(addr string) (*OracleClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &OracleClient{
		conn:   conn,
		client: pb.NewZetaOracleClient(conn),
	}, nil
}

// NewOracleClientWithService creates an OracleClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewOracleClientWithService(svc pb.ZetaOracleClient) *OracleClient {
	return &OracleClient{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *OracleClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region evaluate

// Evaluate requests |zeta(0.5 + it)| at the given decimal precision.
// InvalidArgument and FailedPrecondition from the service mark the fault
// non-retriable; anything else is a per-position fault the caller may skip.
func (c *OracleClient) Evaluate(ctx context.Context, position float64, precision int) (float64, error) {
	resp, err := c.client.Evaluate(ctx, &pb.EvaluateRequest{
		Position:  position,
		Precision: int32(precision),
	})
	if err != nil {
		return 0, rpcEvalError(position, err)
	}
	if resp.Magnitude < 0 {
		return 0, &EvalError{Position: position, Reason: fmt.Sprintf("negative magnitude %v from service", resp.Magnitude)}
	}
	return resp.Magnitude, nil
}

// #endregion evaluate

// #region zero-by-index

// ZeroByIndex asks the service to locate the n-th zero on the critical line.
func (c *OracleClient) ZeroByIndex(ctx context.Context, index int64, precision int) (float64, error) {
	resp, err := c.client.ZeroByIndex(ctx, &pb.ZeroByIndexRequest{
		Index:     index,
		Precision: int32(precision),
	})
	if err != nil {
		return 0, fmt.Errorf("zero by index rpc: %w", err)
	}
	return resp.Position, nil
}

// #endregion zero-by-index

// #region helpers

func rpcEvalError(position float64, err error) error {
	nonRetriable := false
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.InvalidArgument, codes.FailedPrecondition:
			nonRetriable = true
		}
	}
	return &EvalError{
		Position:     position,
		Reason:       fmt.Sprintf("evaluate rpc: %v", err),
		NonRetriable: nonRetriable,
	}
}

// #endregion helpers
