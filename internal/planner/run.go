package planner

import (
	"github.com/gdamore/tcell/v2"

	"github.com/osse101/LoadoutCalc_Go/internal/logger"
)

// Run draws the model and feeds it terminal events until the user quits or
// the screen is finalized. The caller owns screen initialization.
func Run(screen tcell.Screen, m *Model) {
	log := logger.FromContext(m.ctx)
	log.Info(LogMsgPlannerStarted, "records", m.catalog.Len())
	defer func() {
		log.Info(LogMsgPlannerStopped, "entries", m.loadout.Len())
	}()

	for !m.Done() {
		m.Draw(screen)
		screen.Show()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		default:
			m.Update(ev)
		}
	}
}
