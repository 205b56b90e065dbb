package events

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_RegisterBeforeSeal(t *testing.T) {
	facade := NewFacade()
	collector := NewCollector()

	err := facade.RegisterSubscriber(collector)
	require.NoError(t, err)

	require.NoError(t, facade.Seal())
	assert.True(t, facade.Sealed())

	facade.Emitter().TestRunnerStarted()

	events := collector.Events()
	require.Len(t, events, 1)
	assert.Equal(t, KindTestRunnerStarted, events[0].Kind)
}

func TestFacade_RegisterAfterSealFails(t *testing.T) {
	facade := NewFacade()
	require.NoError(t, facade.Seal())

	err := facade.RegisterSubscriber(NewCollector())
	assert.ErrorIs(t, err, ErrSealed)
}

func TestFacade_DoubleSealFails(t *testing.T) {
	facade := NewFacade()
	require.NoError(t, facade.Seal())
	assert.ErrorIs(t, facade.Seal(), ErrSealed)
}

func TestFacade_SequenceNumbersAreMonotonic(t *testing.T) {
	facade := NewFacade()
	collector := NewCollector()
	require.NoError(t, facade.RegisterSubscriber(collector))
	require.NoError(t, facade.Seal())

	emitter := facade.Emitter()
	emitter.TestRunnerStarted()
	emitter.ExecutionStarted()
	emitter.ExecutionFinished()
	emitter.TestRunnerFinished()

	events := collector.Events()
	require.Len(t, events, 4)
	for i, e := range events {
		assert.Equal(t, uint64(i+1), e.Seq)
	}
}

func TestFacade_SubscribersNotifiedInRegistrationOrder(t *testing.T) {
	facade := NewFacade()
	var order []string
	require.NoError(t, facade.RegisterSubscriber(SubscriberFunc(func(Event) {
		order = append(order, "first")
	})))
	require.NoError(t, facade.RegisterSubscriber(SubscriberFunc(func(Event) {
		order = append(order, "second")
	})))
	require.NoError(t, facade.Seal())

	facade.Emitter().TestRunnerStarted()

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestTraceWriter_Format(t *testing.T) {
	facade := NewFacade()
	var buf bytes.Buffer
	require.NoError(t, facade.RegisterSubscriber(NewTraceWriter(&buf)))
	require.NoError(t, facade.Seal())

	emitter := facade.Emitter()
	emitter.TestPreparationStarted("ExampleTest::testOne")
	emitter.TestPrepared("ExampleTest::testOne")
	emitter.TestTriggeredWarning("ExampleTest::testOne", "message")
	emitter.TestPassed("ExampleTest::testOne")
	emitter.TestFinished("ExampleTest::testOne")

	expected := "Test Preparation Started (ExampleTest::testOne)\n" +
		"Test Prepared (ExampleTest::testOne)\n" +
		"Test Triggered Warning (ExampleTest::testOne: message)\n" +
		"Test Passed (ExampleTest::testOne)\n" +
		"Test Finished (ExampleTest::testOne)\n"
	assert.Equal(t, expected, buf.String())
}

func TestEmitter_PayloadWithoutMessage(t *testing.T) {
	e := Event{Kind: KindTestFailed, Payload: "T::m"}
	assert.Equal(t, "Test Failed (T::m)", e.TraceLine())
}
