package mq

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/cotishq/cloudnest/pkg/configs"
)

// The gochannel broker runs in process with no external dependency. It is
// the default backend; events published with no subscriber are dropped.
func gochannelFactory(
	_ context.Context,
	_ *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	return pubSub, pubSub, nil
}

func init() {
	RegisterFactory(configs.MQTypeGoChannel, gochannelFactory)
}
