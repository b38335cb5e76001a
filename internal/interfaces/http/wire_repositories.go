package http

import (
	"gorm.io/gorm"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/infrastructure/repository"
	shareddb "github.com/deskline-inc/deskline/internal/shared/db"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo       user.Repository
	resetTokenRepo user.PasswordResetTokenRepository
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	txMgr          *shareddb.TransactionManager
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(db, log),
		resetTokenRepo: repository.NewPasswordResetTokenRepository(db),
		ticketRepo:     repository.NewTicketRepository(db, log),
		commentRepo:    repository.NewCommentRepository(db, log),
		txMgr:          shareddb.NewTransactionManager(db),
	}
}
