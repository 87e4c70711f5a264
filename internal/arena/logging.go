// internal/arena/logging.go
package arena

import (
	"github.com/charmbracelet/log"

	"tank-arena/internal/event"
)

// logListener writes arena events to the log.
type logListener struct {
	logger *log.Logger
}

func (l *logListener) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.ProjectileData:
		l.logger.Debug(string(e.Type), "id", d.ID, "kind", d.Kind, "shooter", d.Shooter, "x", d.Position.X, "y", d.Position.Y)
	case event.HitData:
		l.logger.Info("Tank hit", "projectile", d.Projectile, "attacker", d.Attacker, "victim", d.Victim)
	case event.WallData:
		l.logger.Debug("Wall destroyed", "col", d.Col, "row", d.Row, "side", d.Side, "projectile", d.Projectile)
	case event.ModifierData:
		l.logger.Debug("Modifier removed", "name", d.Name, "owner", d.Owner)
	}
}
