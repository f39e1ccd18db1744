package messages

import (
	"bytes"
	"testing"

	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *snapshot.Snapshot {
	occ := make([]int, 64)
	tags := make([]int, 64)
	occ[0], tags[0] = 1, 3
	occ[63], tags[63] = 1, 6
	return &snapshot.Snapshot{
		Width:               8,
		Height:              8,
		CurrentScore:        1234,
		BestScore:           99999,
		CurrentCombo:        4,
		MovesSinceLastClear: 2,
		BoardOccupancy:      occ,
		BoardOccupantTags:   tags,
		PendingPieces: []snapshot.PendingPiece{
			{ShapeIndex: 0, VariantTag: 1},
			{ShapeIndex: 10, VariantTag: 6, IsPlaced: true},
			{ShapeIndex: -1, VariantTag: 0, IsPlaced: true},
		},
	}
}

func TestSerializeDeserializeSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap *snapshot.Snapshot
	}{
		{name: "full snapshot", snap: sampleSnapshot()},
		{name: "legacy without dimensions", snap: func() *snapshot.Snapshot {
			s := sampleSnapshot()
			s.Width, s.Height = 0, 0
			return s
		}()},
		{name: "no pending pieces", snap: func() *snapshot.Snapshot {
			s := sampleSnapshot()
			s.PendingPieces = []snapshot.PendingPiece{}
			return s
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeSnapshot(tt.snap)
			require.NoError(t, err)

			got, err := DeserializeSnapshot(b)
			require.NoError(t, err)
			assert.Equal(t, tt.snap, got)
		})
	}
}

func TestSerializeSnapshot_Nil(t *testing.T) {
	_, err := SerializeSnapshot(nil)
	assert.Error(t, err)
}

func TestDeserializeSnapshot_Corrupt(t *testing.T) {
	valid, err := SerializeSnapshot(sampleSnapshot())
	require.NoError(t, err)

	short, err := compress([]byte{1, 2, 3})
	require.NoError(t, err)
	garbage, err := compress(bytes.Repeat([]byte{0xff}, 64))
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "not zstd", data: []byte("definitely not a snapshot")},
		{name: "truncated", data: valid[:len(valid)/2]},
		{name: "empty", data: nil},
		{name: "too short", data: short},
		{name: "bad offsets", data: garbage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeserializeSnapshot(tt.data)
			assert.ErrorIs(t, err, snapshot.ErrCorruptSnapshot)
		})
	}
}

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(MessageTypeServerError, &ErrorResponse{Error: "boom"})
	require.NoError(t, err)
	assert.Equal(t, MessageTypeServerError, msg.Type)
	assert.JSONEq(t, `{"error":"boom"}`, string(msg.Payload))

	msg, err = NewMessage(MessageTypeServerView, nil)
	require.NoError(t, err)
	assert.Nil(t, msg.Payload)

	msg, err = NewEventMessage(types.ComboChangedEvent{Combo: 3})
	require.NoError(t, err)
	assert.Equal(t, MessageTypeServerEvent, msg.Type)
	assert.JSONEq(t, `{"event":"comboChanged","data":{"combo":3}}`, string(msg.Payload))
}
