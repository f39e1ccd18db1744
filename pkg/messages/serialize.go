package messages

import (
	"bytes"
	"fmt"
	"io"

	snapshotfb "github.com/danhquyen2004/Block-Blast/flatbuffers/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// minFlatbufferSize is the root offset plus the smallest possible vtable.
const minFlatbufferSize = 8

// SerializeSnapshot encodes a snapshot as a zstd-compressed flatbuffer.
func SerializeSnapshot(s *snapshot.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("failed to serialize snapshot: snapshot is nil")
	}
	b := SerializeSnapshotFlatbuffer(s)
	compressed, err := compress(b)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %v", err)
	}
	return compressed, nil
}

// DeserializeSnapshot reverses SerializeSnapshot. Malformed input of any kind
// yields an error matching snapshot.ErrCorruptSnapshot.
func DeserializeSnapshot(data []byte) (*snapshot.Snapshot, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, &snapshot.CorruptSnapshotError{Reason: fmt.Sprintf("failed to decompress: %v", err)}
	}
	s, err := DeserializeSnapshotFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %w", err)
	}
	return s, nil
}

func compress(b []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to write: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return compressed.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed data: %v", err)
	}
	return b, nil
}

func SerializeSnapshotFlatbuffer(s *snapshot.Snapshot) []byte {
	builder := flatbuffers.NewBuilder(256)

	pieces := make([]flatbuffers.UOffsetT, 0, len(s.PendingPieces))
	for _, p := range s.PendingPieces {
		snapshotfb.PendingPieceStart(builder)
		snapshotfb.PendingPieceAddShapeIndex(builder, int32(p.ShapeIndex))
		snapshotfb.PendingPieceAddVariantTag(builder, int32(p.VariantTag))
		snapshotfb.PendingPieceAddIsPlaced(builder, p.IsPlaced)
		pieces = append(pieces, snapshotfb.PendingPieceEnd(builder))
	}
	snapshotfb.SnapshotStartPendingPiecesVector(builder, len(pieces))
	for i := len(pieces) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(pieces[i])
	}
	pendingPieces := builder.EndVector(len(pieces))

	snapshotfb.SnapshotStartBoardOccupantTagsVector(builder, len(s.BoardOccupantTags))
	for i := len(s.BoardOccupantTags) - 1; i >= 0; i-- {
		builder.PrependInt32(int32(s.BoardOccupantTags[i]))
	}
	tags := builder.EndVector(len(s.BoardOccupantTags))

	occupancyBytes := make([]byte, len(s.BoardOccupancy))
	for i, v := range s.BoardOccupancy {
		occupancyBytes[i] = byte(v)
	}
	occupancy := builder.CreateByteVector(occupancyBytes)

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddWidth(builder, int32(s.Width))
	snapshotfb.SnapshotAddHeight(builder, int32(s.Height))
	snapshotfb.SnapshotAddCurrentScore(builder, int64(s.CurrentScore))
	snapshotfb.SnapshotAddBestScore(builder, int64(s.BestScore))
	snapshotfb.SnapshotAddCurrentCombo(builder, int32(s.CurrentCombo))
	snapshotfb.SnapshotAddMovesSinceLastClear(builder, int32(s.MovesSinceLastClear))
	snapshotfb.SnapshotAddBoardOccupancy(builder, occupancy)
	snapshotfb.SnapshotAddBoardOccupantTags(builder, tags)
	snapshotfb.SnapshotAddPendingPieces(builder, pendingPieces)
	root := snapshotfb.SnapshotEnd(builder)
	builder.Finish(root)

	return builder.FinishedBytes()
}

// DeserializeSnapshotFlatbuffer decodes an uncompressed snapshot flatbuffer.
// Out-of-range offsets in a damaged buffer surface as a corrupt snapshot
// instead of a panic.
func DeserializeSnapshotFlatbuffer(b []byte) (s *snapshot.Snapshot, err error) {
	if len(b) < minFlatbufferSize {
		return nil, &snapshot.CorruptSnapshotError{Reason: fmt.Sprintf("buffer of %d bytes is too short", len(b))}
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = &snapshot.CorruptSnapshotError{Reason: fmt.Sprintf("invalid flatbuffer: %v", r)}
		}
	}()

	fb := snapshotfb.GetRootAsSnapshot(b, 0)
	s = &snapshot.Snapshot{
		Width:               int(fb.Width()),
		Height:              int(fb.Height()),
		CurrentScore:        int(fb.CurrentScore()),
		BestScore:           int(fb.BestScore()),
		CurrentCombo:        int(fb.CurrentCombo()),
		MovesSinceLastClear: int(fb.MovesSinceLastClear()),
	}

	occupancy := fb.BoardOccupancyBytes()
	s.BoardOccupancy = make([]int, len(occupancy))
	for i, v := range occupancy {
		s.BoardOccupancy[i] = int(v)
	}

	s.BoardOccupantTags = make([]int, fb.BoardOccupantTagsLength())
	for i := range s.BoardOccupantTags {
		s.BoardOccupantTags[i] = int(fb.BoardOccupantTags(i))
	}

	s.PendingPieces = make([]snapshot.PendingPiece, fb.PendingPiecesLength())
	piece := &snapshotfb.PendingPiece{}
	for i := range s.PendingPieces {
		if !fb.PendingPieces(piece, i) {
			return nil, &snapshot.CorruptSnapshotError{Reason: fmt.Sprintf("missing pending piece %d", i)}
		}
		s.PendingPieces[i] = snapshot.PendingPiece{
			ShapeIndex: int(piece.ShapeIndex()),
			VariantTag: int(piece.VariantTag()),
			IsPlaced:   piece.IsPlaced(),
		}
	}

	return s, nil
}
