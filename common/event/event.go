package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// Subscribe registers fn for the topic. fn receives the command published
// to the topic.
func (s *Broker) Subscribe(topic api.Topic, fn interface{}) error {
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Printf("Could not subscribe to '%s': %s", topic, err)
		return err
	}
	return nil
}

// Close removes every handler of the topic. Commands sent afterwards are
// dropped.
func (s *Broker) Close(topic api.Topic) {
	logger.Trace.Printf("Closing '%s'", topic)
	s.bus.Close(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s': %s", topic, command)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}
