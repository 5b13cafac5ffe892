package event

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
	"vincit.fi/imageli/api"
)

func TestBroker_SendCommandToTopic(t *testing.T) {
	a := assert.New(t)
	broker := InitBus(10)

	received := make(chan *api.ControlsCommand, 1)
	a.Nil(broker.Subscribe(api.ControlsChanged, func(command *api.ControlsCommand) {
		received <- command
	}))

	broker.SendCommandToTopic(api.ControlsChanged, &api.ControlsCommand{Enabled: true})

	select {
	case command := <-received:
		a.True(command.Enabled)
	case <-time.After(time.Second):
		a.Fail("command was not delivered")
	}
}

func TestBroker_SendError(t *testing.T) {
	a := assert.New(t)
	broker := InitBus(10)

	received := make(chan string, 1)
	a.Nil(broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		received <- command.Message
	}))

	broker.SendError("Could not load image", errors.New("broken file"))

	select {
	case message := <-received:
		a.Equal("Could not load image\nbroken file", message)
	case <-time.After(time.Second):
		a.Fail("error was not delivered")
	}
}

func TestBroker_Subscribe_InvalidHandler(t *testing.T) {
	a := assert.New(t)
	broker := InitBus(1)

	a.NotNil(broker.Subscribe(api.ShowError, "not a function"))
}

func TestBroker_Close(t *testing.T) {
	a := assert.New(t)
	broker := InitBus(10)

	received := make(chan *api.ControlsCommand, 1)
	a.Nil(broker.Subscribe(api.ControlsChanged, func(command *api.ControlsCommand) {
		received <- command
	}))

	broker.Close(api.ControlsChanged)
	broker.Close(api.ShowError)
	broker.SendCommandToTopic(api.ControlsChanged, &api.ControlsCommand{Enabled: true})

	select {
	case <-received:
		a.Fail("command was delivered after close")
	case <-time.After(100 * time.Millisecond):
	}
}
