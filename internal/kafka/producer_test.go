package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraud-engine/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaProducer_PublishDecision(t *testing.T) {
	sp := mocks.NewSyncProducer(t, NewSaramaConfig())
	defer sp.Close()

	event := models.DecisionEvent{
		TransactionID:  uuid.New(),
		UserID:         "user-1",
		Amount:         1500,
		Status:         models.StatusBlocked,
		RiskScore:      1,
		RulesTriggered: []string{"High Amount"},
	}

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "user-1" {
			return errors.New("unexpected key " + string(key))
		}

		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got models.DecisionEvent
		if err := json.Unmarshal(raw, &got); err != nil {
			return err
		}
		if got.TransactionID != event.TransactionID || got.Status != models.StatusBlocked {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := newProducer(sp, "fraud-decisions", testLogger())

	require.NoError(t, p.PublishDecision(context.Background(), event))
}

func TestKafkaProducer_PublishDecision_Failure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, NewSaramaConfig())
	defer sp.Close()

	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newProducer(sp, "fraud-decisions", testLogger())

	err := p.PublishDecision(context.Background(), models.DecisionEvent{TransactionID: uuid.New(), UserID: "u"})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestNoOpProducer(t *testing.T) {
	p := NewNoOpProducer(testLogger())

	assert.NoError(t, p.PublishDecision(context.Background(), models.DecisionEvent{}))
	assert.NoError(t, p.Close())
}
