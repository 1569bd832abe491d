package worker

import (
	"context"
	"fmt"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// SessionSaver is the part of the session manager autosave needs
type SessionSaver interface {
	Slots() []string
	Save(ctx context.Context, slot string) (domain.SaveState, error)
}

// AutosaveJob writes every live session to the save store
type AutosaveJob struct {
	Sessions SessionSaver
}

// NewAutosaveJob creates an autosave job over sessions
func NewAutosaveJob(sessions SessionSaver) *AutosaveJob {
	return &AutosaveJob{Sessions: sessions}
}

// Process saves each slot in turn. A failing slot does not stop the others;
// the first error is returned once all slots were attempted.
func (j *AutosaveJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	slots := j.Sessions.Slots()
	log.Debug(LogMsgAutosaveStarting, "slots", len(slots))

	var first error
	failed := 0
	for _, slot := range slots {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := j.Sessions.Save(ctx, slot); err != nil {
			failed++
			if first == nil {
				first = err
			}
			log.Warn(LogMsgAutosaveSlotFail, "slot", slot, "error", err)
		}
	}

	if first != nil {
		return fmt.Errorf(ErrFmtAutosave, failed, len(slots), first)
	}
	log.Info(LogMsgAutosaveCompleted, "slots", len(slots))
	return nil
}
