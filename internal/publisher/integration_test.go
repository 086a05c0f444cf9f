//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"reddit_analyzer/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func strPtr(v string) *string { return &v }

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishPost() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-post",
		RoutingKey: "test-routing-key-post",
		QueueName:  "test-queue-post",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	post := &domain.Post{
		ID:          1,
		SubredditID: 10,
		RedditID:    "abc123",
		Title:       "Test Post",
		Content:     strPtr("some selftext"),
		Score:       42,
		NumComments: 7,
		URL:         "https://reddit.com/r/golang/comments/abc123/test_post/",
		CreatedAt:   now,
	}

	err = pub.PublishPost(s.ctx, post)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received struct {
		Event     string      `json:"event"`
		Payload   domain.Post `json:"payload"`
		Timestamp time.Time   `json:"timestamp"`
	}
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventPostCreated, received.Event)
	s.Equal("abc123", received.Payload.RedditID)
	s.Equal("Test Post", received.Payload.Title)
	s.Equal(42, received.Payload.Score)
	s.NotNil(received.Payload.Content)
	s.Equal("some selftext", *received.Payload.Content)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishAnalysis() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-analysis",
		RoutingKey: "test-routing-key-analysis",
		QueueName:  "test-queue-analysis",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	analysis := &domain.ThemeAnalysis{
		ID:     1,
		PostID: 100,
		Categories: domain.Categories{
			IsSolutionRequest: true,
			IsMoneyTalk:       true,
		},
		Reasoning: domain.Reasoning{
			SolutionRequest: strPtr("asks how to fix a build error"),
		},
	}

	err = pub.PublishAnalysis(s.ctx, analysis)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received struct {
		Event   string               `json:"event"`
		Payload domain.ThemeAnalysis `json:"payload"`
	}
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventAnalysisCreated, received.Event)
	s.Equal(int64(100), received.Payload.PostID)
	s.True(received.Payload.Categories.IsSolutionRequest)
	s.True(received.Payload.Categories.IsMoneyTalk)
	s.False(received.Payload.Categories.IsPainOrAnger)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
