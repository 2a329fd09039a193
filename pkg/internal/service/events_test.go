package service_test

import (
	"testing"
	"time"

	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/queue"
)

func TestUploadPublishesEvent(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	cfg := configs.GetConfig()
	cfg.Events = configs.EventsConfig{
		Enabled: true,
		Node:    configs.NodeEventsConfig{Uploaded: true},
	}

	ch, err := mgr.MQ.Subscribe(ctx, queue.TopicNodeUploaded)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	// The in-process broker blocks publishers until the subscriber acks, so
	// the consumer has to run concurrently with the upload.
	got := make(chan queue.Message[queue.NodeUploadedPayload], 1)

	go func() {
		msg, ok := <-ch
		if !ok {
			return
		}

		env, err := queue.ParseNodeUploaded(msg)
		msg.Ack()

		if err == nil {
			got <- env
		}
	}()

	node := mustUploadFile(t, ctx, svc, testOwner, "cat.png", "image/png", 64, nil)

	select {
	case env := <-got:
		if env.Header.Topic != queue.TopicNodeUploaded {
			t.Errorf("header topic = %q, want %q", env.Header.Topic, queue.TopicNodeUploaded)
		}

		if env.Header.Producer != configs.AppName {
			t.Errorf("producer = %q, want %q", env.Header.Producer, configs.AppName)
		}

		if env.Payload.Node.ID != node.ID || env.Payload.Node.OwnerID != testOwner {
			t.Errorf("payload node = %+v, want id %s owned by %s", env.Payload.Node, node.ID, testOwner)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event arrived on the uploaded topic")
	}
}

func TestTrashEventsDisabledByDefault(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	ch, err := mgr.MQ.Subscribe(ctx, queue.TopicNodeTrashed)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	file := mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, nil)
	if _, _, err := svc.ToggleTrash(ctx, testOwner, file.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}

	select {
	case <-ch:
		t.Fatal("event published while publication is disabled")
	case <-time.After(100 * time.Millisecond):
	}
}
