package harmony

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/join"
	"github.com/google/uuid"
)

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReady      Status = "READY"
	StatusError      Status = "ERROR"
)

type Status string

// Stage names the dictionary a pipeline step produces.
type Stage string

const (
	StageSolo   Stage = "solo"
	StageDuo    Stage = "duo"
	StageTrio   Stage = "trio"
	StageQuadro Stage = "quadro"
	StagePento  Stage = "pento"
)

var stages = [...]Stage{StageSolo, StageDuo, StageTrio, StageQuadro, StagePento}

// StageFor returns the stage producing records of the given arity.
func StageFor(arity int) Stage {
	if arity < 1 || arity > len(stages) {
		return Stage(fmt.Sprintf("arity-%d", arity))
	}
	return stages[arity-1]
}

type Progress struct {
	RunID      uuid.UUID `json:"run_id"`
	Status     Status    `json:"status"`
	Stage      Stage     `json:"stage"`
	TasksDone  int       `json:"tasks_done"`
	TotalTasks int       `json:"total_tasks"`
}

// Result holds the arity-5 dictionary of a finished run.
type Result struct {
	RunID   uuid.UUID
	Catalog *catalog.Catalog
	Pento   *combo.Dictionary
	Stats   []join.Stats
}

// Solutions returns the arity-5 records covering at least coverage letters.
// Zero or less keeps every record.
func (r *Result) Solutions(coverage int) []combo.Record {
	records := r.Pento.Records()
	if coverage <= 0 {
		return records
	}

	out := make([]combo.Record, 0, len(records))
	for _, rec := range records {
		if rec.Mask().Count() >= coverage {
			out = append(out, rec)
		}
	}

	return out
}

// UsedWords returns the ids of every word taking part in a solution.
func (r *Result) UsedWords(coverage int) *roaring.Bitmap {
	bm := roaring.New()
	for _, rec := range r.Solutions(coverage) {
		for _, id := range rec.IDs() {
			bm.Add(uint32(id))
		}
	}

	return bm
}
