// Package service drains the hub event stream into index tasks
package service

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"hubgate/internal/hub/pb"
	"hubgate/internal/platform/logger"
	idxdom "hubgate/internal/services/indexer/domain"
	signdom "hubgate/internal/services/signers/domain"
)

// EventSource is the slice of the hub adapter the subscriber needs
type EventSource interface {
	Subscribe(ctx context.Context) (pb.HubService_SubscribeClient, error)
}

// Subscriber converts relevant hub events into index tasks. It owns the
// stream lifetime: a broken stream is reopened under exponential back-off,
// and the back-off resets once a stream has stayed healthy for a while.
type Subscriber struct {
	hub   EventSource
	tasks idxdom.Enqueuer
}

// steadyStateAfter is how long a stream must survive before a reconnect is
// treated as a fresh incident rather than a continuing flap
const steadyStateAfter = time.Minute

// New constructs a Subscriber
func New(hub EventSource, tasks idxdom.Enqueuer) *Subscriber {
	if hub == nil || tasks == nil {
		panic("subscriber.Subscriber requires a hub source and an enqueuer")
	}
	return &Subscriber{hub: hub, tasks: tasks}
}

// Run supervises the subscription until ctx is cancelled
func (s *Subscriber) Run(ctx context.Context) error {
	l := logger.Named("subscriber")

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = time.Minute
	bo.MaxElapsedTime = 0 // retry forever; only ctx stops us

	for {
		started := time.Now()
		err := s.drain(ctx)
		if ctx.Err() != nil || permanent(err) {
			l.Info().Msg("subscriber stopping")
			return ctx.Err()
		}
		if time.Since(started) > steadyStateAfter {
			bo.Reset()
		}
		wait := bo.NextBackOff()
		l.Warn().Err(err).Dur("retry_in", wait).Msg("hub stream ended, reconnecting")
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// drain opens one stream and consumes it until error or cancellation
func (s *Subscriber) drain(ctx context.Context) error {
	l := logger.Named("subscriber")
	stream, err := s.hub.Subscribe(ctx)
	if err != nil {
		return err
	}
	l.Info().Msg("hub stream open")

	for {
		ev, err := stream.Recv()
		if err != nil {
			return err
		}
		s.handle(ev)
	}
}

// handle translates one hub event into zero or more tasks. Unknown event
// shapes are skipped silently; the stream carries far more than we index.
func (s *Subscriber) handle(ev *pb.HubEvent) {
	switch ev.GetType() {
	case pb.HubEventType_HUB_EVENT_TYPE_MERGE_ON_CHAIN_EVENT:
		body := ev.MergeOnChainEventBody
		if body == nil || body.OnChainEvent == nil {
			return
		}
		signer, ok := signdom.FromOnChainEvent(body.OnChainEvent)
		if !ok {
			return
		}
		if !s.tasks.Enqueue(idxdom.UpdateSigner(signer)) {
			logger.Named("subscriber").Warn().
				Int64("fid", signer.Fid).Msg("queue closed, signer update dropped")
		}

	case pb.HubEventType_HUB_EVENT_TYPE_MERGE_MESSAGE:
		body := ev.MergeMessageBody
		if body == nil || body.Message == nil {
			return
		}
		data := body.Message.GetData()
		if data == nil || data.GetType() != pb.MessageType_MESSAGE_TYPE_USER_DATA_ADD || data.UserDataBody == nil {
			return
		}
		// force: the hub just told us the profile changed, so the debounce
		// gap must not mask it
		if !s.tasks.Enqueue(idxdom.IndexFid(data.Fid, true)) {
			logger.Named("subscriber").Warn().
				Uint64("fid", data.Fid).Msg("queue closed, profile refresh dropped")
		}
	}
}

// permanent marks errors that should stop the supervisor outright. Today only
// context cancellation qualifies; kept as a seam for stream-level auth errors.
func permanent(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
