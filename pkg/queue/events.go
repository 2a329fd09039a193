package queue

import "github.com/ThreeDotsLabs/watermill/message"

// Typed publish/parse helpers per topic.

// PublishNodeUploaded publishes cn.node.uploaded after the blob write and
// the metadata row both succeeded.
func PublishNodeUploaded(pub message.Publisher, payload NodeUploadedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicNodeUploaded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicNodeUploaded, msg)
}

// ParseNodeUploaded decodes a cn.node.uploaded envelope.
func ParseNodeUploaded(msg *message.Message) (Message[NodeUploadedPayload], error) {
	return ParseWatermillMessage[NodeUploadedPayload](msg)
}

// PublishFolderCreated publishes cn.folder.created.
func PublishFolderCreated(pub message.Publisher, payload FolderCreatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFolderCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFolderCreated, msg)
}

// PublishNodeTrashState publishes cn.node.trashed or cn.node.restored
// depending on the toggle direction.
func PublishNodeTrashState(pub message.Publisher, payload NodeTrashStatePayload, opts ...func(*EventHeader)) error {
	topic := TopicNodeRestored
	if payload.Trashed {
		topic = TopicNodeTrashed
	}

	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}

// PublishNodeDeleted publishes cn.node.deleted.
func PublishNodeDeleted(pub message.Publisher, payload NodeDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicNodeDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicNodeDeleted, msg)
}

// PublishTrashEmptied publishes cn.trash.emptied.
func PublishTrashEmptied(pub message.Publisher, payload TrashEmptiedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicTrashEmptied, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicTrashEmptied, msg)
}
