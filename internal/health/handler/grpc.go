// Package handler serves the standard grpc.health.v1 service.
package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const checkTimeout = 2 * time.Second

// Pinger checks database reachability (e.g. *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// PolicyChecker checks the authorization policy can still evaluate.
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server answers Check for the whole server ("") from live dependency probes.
// Named services and Watch fall back to the embedded grpc health server.
type Server struct {
	*health.Server
	pinger Pinger
	policy PolicyChecker
}

// NewServer returns a health server. Nil dependencies are skipped by Check.
func NewServer(pinger Pinger, policy PolicyChecker) *Server {
	return &Server{Server: health.NewServer(), pinger: pinger, policy: policy}
}

// Check pings the database and evaluates the policy on every overall check and records the
// result, so Watch subscribers see transitions too.
func (s *Server) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if req.GetService() != "" {
		return s.Server.Check(ctx, req)
	}
	st := s.probe(ctx)
	s.SetServingStatus("", st)
	return &healthpb.HealthCheckResponse{Status: st}, nil
}

func (s *Server) probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			return healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	if s.policy != nil {
		if err := s.policy.HealthCheck(ctx); err != nil {
			return healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	return healthpb.HealthCheckResponse_SERVING
}
