package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/terrain-api/internal/errors"
)

var healthService string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the gRPC health service",
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&healthService, "service", "", "Service name to check (empty for the whole server)")
}

func runHealth(_ *cobra.Command, _ []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	status, err := checkHealth(ctx, grpc_health_v1.NewHealthClient(conn), healthService)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", serverAddr, status)
	if status != grpc_health_v1.HealthCheckResponse_SERVING {
		return errors.Unavailable(fmt.Sprintf("server reports %s", status))
	}
	return nil
}

func checkHealth(ctx context.Context, c grpc_health_v1.HealthClient, service string) (grpc_health_v1.HealthCheckResponse_ServingStatus, error) {
	resp, err := c.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, errors.FromGRPCError(err)
	}
	return resp.GetStatus(), nil
}
