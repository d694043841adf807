package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skilltree-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := redis.NewClient("", nil)
	s.EqualError(err, "redis: endpoint is required")

	_, err = redis.NewClusterClient(nil, nil)
	s.EqualError(err, "redis: at least one endpoint is required")

	_, err = redis.Connect(nil, nil)
	s.Error(err)
}

func (s *ClientTestSuite) TestConnectSingleNode() {
	mr := miniredis.RunT(s.T())

	client, err := redis.Connect([]string{mr.Addr()}, &redis.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Require().NoError(client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	s.Require().NoError(err)
	s.Equal("v", got)
}
