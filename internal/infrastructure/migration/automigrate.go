package migration

import (
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models the AutoMigrate strategy creates.
func AutoMigrateModels() []interface{} {
	return models.All()
}
