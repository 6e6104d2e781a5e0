// internal/app/features/articles/handler.go
package articles

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	articlestore "github.com/gatherhub/gatherhub/internal/app/store/articles"
	commentstore "github.com/gatherhub/gatherhub/internal/app/store/comments"
)

// Handler is the shared dependency container for the articles feature:
// article CRUD plus the comment sub-resource.
type Handler struct {
	Articles *articlestore.Store
	Comments *commentstore.Store
	Log      *zap.Logger
}

// NewHandler constructs an articles Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Articles: articlestore.New(db),
		Comments: commentstore.New(db),
		Log:      logger,
	}
}
