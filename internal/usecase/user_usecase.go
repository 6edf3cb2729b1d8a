package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidUser   = errors.New("invalid user data")
)

// IUserUseCase is the account CRUD surface for the back office.

type IUserUseCase interface {
	Create(ctx context.Context, usr entities.User, actor Actor) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Update(ctx context.Context, usr entities.User, actor Actor) (entities.User, error)
	Delete(ctx context.Context, id string, actor Actor) error
	List(ctx context.Context, role string) ([]entities.User, error)
}

type UserUseCase struct {
	repo  interfaces.IUserRepository
	audit interfaces.IAuditRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, audit interfaces.IAuditRepository) *UserUseCase {
	return &UserUseCase{repo: repo, audit: audit}
}

func (u *UserUseCase) Create(ctx context.Context, usr entities.User, actor Actor) (entities.User, error) {
	if err := validateUser(usr); err != nil {
		return entities.User{}, err
	}
	if usr.Role == "" {
		usr.Role = entities.RoleCliente
	}
	usr.ID = uuid.NewString()
	usr.RegisteredAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, usr)
	if err != nil {
		log.Printf("[user][usecase] create failed username=%q err=%v", usr.Username, err)
		return entities.User{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Creó usuario '%s' con rol %s", created.Username, created.Role))
	return created, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (u *UserUseCase) Update(ctx context.Context, usr entities.User, actor Actor) (entities.User, error) {
	current, err := u.GetByID(ctx, usr.ID)
	if err != nil {
		return entities.User{}, err
	}
	if err := validateUser(usr); err != nil {
		return entities.User{}, err
	}
	usr.RegisteredAt = current.RegisteredAt

	updated, err := u.repo.Update(ctx, usr)
	if err != nil {
		log.Printf("[user][usecase] update failed usuario_id=%s err=%v", usr.ID, err)
		return entities.User{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Actualizó usuario '%s'", updated.Username))
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	usr, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, usr.ID); err != nil {
		log.Printf("[user][usecase] delete failed usuario_id=%s err=%v", id, err)
		return err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Eliminó usuario '%s'", usr.Username))
	return nil
}

func (u *UserUseCase) List(ctx context.Context, role string) ([]entities.User, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return u.repo.List(ctx)
	}
	return u.repo.ListByRole(ctx, role)
}

func validateUser(usr entities.User) error {
	if strings.TrimSpace(usr.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidUser)
	}
	email := strings.TrimSpace(usr.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is required", ErrInvalidUser)
	}
	switch usr.Role {
	case "", entities.RoleAdministrador, entities.RoleCliente, entities.RoleTecnico:
		return nil
	}
	return fmt.Errorf("%w: unknown rol %q", ErrInvalidUser, usr.Role)
}

func (u *UserUseCase) logAudit(ctx context.Context, actor Actor, action string) {
	if u.audit == nil {
		return
	}
	entry := entities.AuditEntry{
		ID:       uuid.NewString(),
		Username: actor.Username,
		Action:   action,
		IP:       actor.IP,
		Date:     time.Now().UTC(),
		Success:  true,
	}
	if err := u.audit.Create(ctx, entry); err != nil {
		log.Printf("[user][usecase] audit write failed usuario=%s err=%v", actor.Username, err)
	}
}
