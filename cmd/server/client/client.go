// Package client provides commands that call a running build planner over
// gRPC
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skilltree-api/internal/handlers/skilltree/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running build planner",
	Long:  `Client commands make real gRPC requests against a build planner server and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Sessions
	ClientCmd.AddCommand(startSessionCmd)
	ClientCmd.AddCommand(getBuildCmd)
	ClientCmd.AddCommand(shareCmd)
	ClientCmd.AddCommand(listSkillsCmd)

	// Mutations
	ClientCmd.AddCommand(allocateCmd)
	ClientCmd.AddCommand(deallocateCmd)
	ClientCmd.AddCommand(clearSkillCmd)
	ClientCmd.AddCommand(setBonusCmd)
	ClientCmd.AddCommand(resetCmd)
}

type unaryMethod func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// createPlannerClient creates a build planner client
func createPlannerClient() (v1alpha1.BuildPlannerServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewBuildPlannerServiceClient(conn), cleanup, nil
}

// invoke sends fields to the method picked from the client and prints the
// response
func invoke(cmd *cobra.Command, pick func(v1alpha1.BuildPlannerServiceClient) unaryMethod, fields map[string]any) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := pick(client)(ctx, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
