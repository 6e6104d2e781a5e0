// internal/app/features/groups/handler.go
package groups

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	groupstore "github.com/gatherhub/gatherhub/internal/app/store/groups"
	joinstore "github.com/gatherhub/gatherhub/internal/app/store/joins"
)

// Handler is the shared dependency container for the groups feature:
// group CRUD plus the join/leave membership operations.
type Handler struct {
	Groups *groupstore.Store
	Joins  *joinstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a groups Handler. Called from the bootstrap
// router builder with the initialized DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Groups: groupstore.New(db),
		Joins:  joinstore.New(db),
		Log:    logger,
	}
}
