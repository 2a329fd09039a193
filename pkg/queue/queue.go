// Package queue defines the lifecycle event envelope published over the
// message queue when nodes change.
//
// Every event is a JSON envelope: Message[Payload] = Header + Payload.
// Topic constants live in topics.go, payload structs in payloads.go.
// Encoding uses bytedance/sonic so consumers in any language can parse it.
//
// Envelope JSON shape:
//
//	{
//	  "header": {
//	    "topic": "cn.node.uploaded",
//	    "trace_id": "optional-trace-id",
//	    "producer": "cloudnest",
//	    "occurred_at": "2025-01-02T03:04:05.123456Z",
//	    "version": "v1"
//	  },
//	  "payload": { ... per topic ... }
//	}
//
// Publish/subscribe example:
//
//	payload := queue.NodeUploadedPayload{
//	  Node: queue.NodeRef{ID: "n1", OwnerID: "alice@example.com", Name: "a.pdf"},
//	}
//	msg, _ := queue.NewWatermillMessage(queue.TopicNodeUploaded, payload)
//	_ = client.Publish(ctx, queue.TopicNodeUploaded, msg)
//
//	ch, _ := client.Subscribe(ctx, queue.TopicNodeUploaded)
//	for m := range ch {
//	    env, _ := queue.ParseWatermillMessage[queue.NodeUploadedPayload](m)
//	    _ = env.Payload
//	    m.Ack()
//	}
package queue

import (
	"time"

	watermill "github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
)

const (
	PayloadVersionV1 string = "v1"
)

// NewEventHeader creates an event header stamped with the current time.
func NewEventHeader(topic string, opts ...func(*EventHeader)) EventHeader {
	hdr := EventHeader{
		Topic:      topic,
		OccurredAt: time.Now().UTC(),
		Version:    PayloadVersionV1,
	}
	for _, opt := range opts {
		opt(&hdr)
	}

	return hdr
}

// WithTraceID sets the TraceID header.
func WithTraceID(id string) func(*EventHeader) { return func(h *EventHeader) { h.TraceID = id } }

// WithProducer sets the Producer header.
func WithProducer(p string) func(*EventHeader) { return func(h *EventHeader) { h.Producer = p } }

// Encode marshals an envelope to JSON.
func Encode[T any](msg Message[T]) ([]byte, error) { return sonic.Marshal(msg) }

// Decode unmarshals an envelope from JSON.
func Decode[T any](b []byte) (Message[T], error) {
	var m Message[T]

	err := sonic.Unmarshal(b, &m)

	return m, err
}

// NewWatermillMessage builds a watermill message carrying the envelope, with
// header fields mirrored into metadata.
func NewWatermillMessage[T any](topic string, payload T, opts ...func(*EventHeader)) (*message.Message, error) {
	header := NewEventHeader(topic, opts...)
	env := Message[T]{Header: header, Payload: payload}

	data, err := Encode(env)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)

	if header.TraceID != "" {
		msg.Metadata.Set("trace_id", header.TraceID)
	}

	if header.Producer != "" {
		msg.Metadata.Set("producer", header.Producer)
	}

	msg.Metadata.Set("occurred_at", header.OccurredAt.Format(time.RFC3339Nano))

	if header.Version != "" {
		msg.Metadata.Set("version", header.Version)
	}

	return msg, nil
}

// ParseWatermillMessage decodes the typed envelope out of a watermill message.
func ParseWatermillMessage[T any](msg *message.Message) (Message[T], error) {
	return Decode[T](msg.Payload)
}
