/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package simnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientPortRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := NewMockRandom(ctrl)

	rng.EXPECT().IntInRange(EphemeralPortMin, EphemeralPortMax).Return(45000)

	tr := NewTransport(rng)
	assert.Equal(t, 45000, tr.ClientPort())

	uniform := NewTransport(NewRandom(99))
	for i := 0; i < 200; i++ {
		p := uniform.ClientPort()
		assert.GreaterOrEqual(t, p, EphemeralPortMin)
		assert.LessOrEqual(t, p, EphemeralPortMax)
	}
}

func TestBindAndConnectNotifyOnlyOnSuccess(t *testing.T) {
	tests := []struct {
		name    string
		success bool
		op      func(*SimTransport) bool
		expect  func(*MockObserver)
	}{
		{
			name:    "bind success",
			success: true,
			op:      func(tr *SimTransport) bool { return tr.Bind(40001) },
			expect:  func(o *MockObserver) { o.EXPECT().PortBound(40001) },
		},
		{
			name:    "bind failure",
			success: false,
			op:      func(tr *SimTransport) bool { return tr.Bind(40001) },
			expect:  func(*MockObserver) {},
		},
		{
			name:    "connect success",
			success: true,
			op:      func(tr *SimTransport) bool { return tr.Connect(443) },
			expect:  func(o *MockObserver) { o.EXPECT().PortConnected(443) },
		},
		{
			name:    "connect failure",
			success: false,
			op:      func(tr *SimTransport) bool { return tr.Connect(443) },
			expect:  func(*MockObserver) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			obs := NewMockObserver(ctrl)
			tt.expect(obs)

			tr := NewTransport(NewScriptedRandom(tt.success), obs)
			assert.Equal(t, tt.success, tt.op(tr))
		})
	}
}

func TestSendReceiveHaveNoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockObserver(ctrl)

	obs.EXPECT().MessageCreated()
	obs.EXPECT().MessageReleased()

	tr := NewTransport(NewScriptedRandom(true, false, true), obs)

	msg, err := tr.NewMessage()
	require.NoError(t, err)

	assert.True(t, tr.Send(msg))
	assert.False(t, tr.Receive(msg))
	assert.True(t, tr.Receive(nil), "receive draws an outcome without a message")

	msg.Release()
}

func TestCloseAlwaysNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := NewMockRandom(ctrl)
	obs := NewMockObserver(ctrl)

	obs.EXPECT().PortClosed(22).Times(2)

	tr := NewTransport(rng, obs)
	tr.Close(22)
	tr.Close(22)
}

func TestObserversFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	first, second := NewMockObserver(ctrl), NewMockObserver(ctrl)

	gomock.InOrder(
		first.EXPECT().PortBound(50000),
		second.EXPECT().PortBound(50000),
	)
	first.EXPECT().PortConnected(80)
	second.EXPECT().PortConnected(80)
	first.EXPECT().PortClosed(80)
	second.EXPECT().PortClosed(80)

	tr := NewTransport(NewScriptedRandom(true, true), first, second)

	require.True(t, tr.Bind(50000))
	require.True(t, tr.Connect(80))
	tr.Close(80)
}

func TestMessageReleaseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockObserver(ctrl)

	obs.EXPECT().MessageCreated().Times(1)
	obs.EXPECT().MessageReleased().Times(1)

	msg := NewMessage(obs)
	assert.False(t, msg.Released())

	msg.Release()
	msg.Release()
	assert.True(t, msg.Released())

	var missing *Message
	assert.NotPanics(t, missing.Release)
	assert.False(t, missing.Released())

	untracked := NewMessage(nil)
	assert.NotPanics(t, untracked.Release)
}
