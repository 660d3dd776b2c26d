package session

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/constvars"
	"clinidash-core/internal/pkg/dto/requests"
	"clinidash-core/internal/pkg/dto/responses"
	"clinidash-core/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// changeSignal is the payload broadcast on the session channel whenever an
// instance writes or clears the persisted identity. Receivers re-read the
// store rather than trusting the signal body.
type changeSignal struct {
	Instance string `json:"instance"`
	Action   string `json:"action"`
}

type sessionStore struct {
	Storage        contracts.StorageRepository
	Gateway        contracts.APIGateway
	Events         contracts.SessionEventPublisher
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	InstanceID     string

	redirect func(route string)

	mu      sync.RWMutex
	user    *models.User
	profile *models.Profile
}

// NewSessionStore builds the per-instance session owner. events may be nil
// when no broker is configured; redirect is the navigation hook fired on
// logout and forced logout.
func NewSessionStore(
	storage contracts.StorageRepository,
	apiGateway contracts.APIGateway,
	events contracts.SessionEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	redirect func(route string),
) contracts.SessionStore {
	return &sessionStore{
		Storage:        storage,
		Gateway:        apiGateway,
		Events:         events,
		Log:            logger,
		InternalConfig: internalConfig,
		InstanceID:     uuid.New().String(),
		redirect:       redirect,
	}
}

func (s *sessionStore) Login(ctx context.Context, request *requests.Login) (*models.Session, error) {
	if strings.TrimSpace(request.Identifier) == "" || request.Password == "" {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	upstreamRequest := &requests.UpstreamLogin{Password: request.Password}
	if strings.Contains(request.Identifier, "@") {
		upstreamRequest.Email = request.Identifier
	} else {
		upstreamRequest.NombreUsuario = request.Identifier
	}

	loginResponse := new(responses.UpstreamLogin)
	err := s.Gateway.PostJSON(ctx, constvars.EndpointLogin, upstreamRequest, loginResponse)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindUnauthorized) {
			return nil, exceptions.ErrInvalidCredentials(err)
		}
		return nil, err
	}

	user := &models.User{
		ID:       loginResponse.User.IDUsuario,
		Username: loginResponse.User.NombreUsuario,
		Role:     loginResponse.User.TipoUsuario,
	}
	profile := user.MinimalProfile()

	err = s.persist(ctx, user, profile)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.profile = profile
	s.mu.Unlock()

	s.announce(ctx, "login")
	s.publishEvent(ctx, constvars.SessionEventLogin, user)

	s.Log.Info("sessionStore.Login succeeded",
		zap.String(constvars.LoggingInstanceIDKey, s.InstanceID),
		zap.Int(constvars.LoggingUserIDKey, user.ID),
	)
	return &models.Session{User: user, Profile: profile}, nil
}

func (s *sessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	user := s.user
	s.user = nil
	s.profile = nil
	s.mu.Unlock()

	// Upstream invalidation is best effort; the local session is gone either
	// way and the cookie dies with the upstream call when it does land.
	err := s.Gateway.PostJSON(ctx, constvars.EndpointLogout, nil, nil)
	if err != nil {
		s.Log.Warn("sessionStore.Logout upstream invalidation failed",
			zap.Error(err),
		)
	}

	err = s.Storage.Delete(ctx, constvars.StorageUserKey, constvars.StorageProfileKey)
	if err != nil {
		return err
	}

	s.announce(ctx, "logout")
	s.publishEvent(ctx, constvars.SessionEventLogout, user)

	if s.redirect != nil {
		s.redirect(s.InternalConfig.App.LoginRoute)
	}
	return nil
}

func (s *sessionStore) LoadProfile(ctx context.Context, userID int) (*models.Profile, error) {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()

	if userID == 0 {
		if user == nil {
			return nil, exceptions.ErrNotAuthenticated(nil)
		}
		userID = user.ID
	}

	params := url.Values{}
	params.Set("id", strconv.Itoa(userID))

	upstreamProfile := new(responses.UpstreamProfile)
	err := s.Gateway.GetJSON(ctx, constvars.ResourceProfile, params, upstreamProfile)
	if err != nil {
		if user != nil && user.ID == userID {
			// Enrichment failed; the minimal profile is still valid and is
			// better than an absent one.
			s.Log.Warn(constvars.ErrDevProfileFetchFailed,
				zap.Int(constvars.LoggingUserIDKey, userID),
				zap.Error(err),
			)
			return user.MinimalProfile(), nil
		}
		return nil, err
	}

	if user != nil && user.ID == userID {
		if upstreamProfile.IDUsuario != user.ID || upstreamProfile.TipoUsuario != user.Role {
			s.ForceLogout(constvars.ErrDevSessionIdentityDiverge)
			return nil, exceptions.ErrSessionIdentityDiverged(nil)
		}

		// Enrichment only: identity fields come from the session user, never
		// from the fetch.
		profile := &models.Profile{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			Nombre:   upstreamProfile.Nombre,
			Apellido: upstreamProfile.Apellido,
			Email:    upstreamProfile.Email,
			Telefono: upstreamProfile.Telefono,
		}

		err = s.Storage.Set(ctx, constvars.StorageProfileKey, profile, s.sessionTTL())
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.profile = profile
		s.mu.Unlock()

		s.announce(ctx, "profile")
		return profile, nil
	}

	// Explicit lookup for someone else's profile; nothing is persisted.
	return &models.Profile{
		ID:       upstreamProfile.IDUsuario,
		Username: upstreamProfile.NombreUsuario,
		Role:     upstreamProfile.TipoUsuario,
		Nombre:   upstreamProfile.Nombre,
		Apellido: upstreamProfile.Apellido,
		Email:    upstreamProfile.Email,
		Telefono: upstreamProfile.Telefono,
	}, nil
}

func (s *sessionStore) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	return &models.Session{User: s.user, Profile: s.profile}
}

func (s *sessionStore) ForceLogout(reason string) {
	s.mu.Lock()
	user := s.user
	if user == nil {
		s.mu.Unlock()
		return
	}
	s.user = nil
	s.profile = nil
	s.mu.Unlock()

	s.Log.Warn("sessionStore.ForceLogout",
		zap.String("reason", reason),
		zap.Int(constvars.LoggingUserIDKey, user.ID),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.Storage.Delete(ctx, constvars.StorageUserKey, constvars.StorageProfileKey)
	if err != nil {
		s.Log.Error("sessionStore.ForceLogout failed clearing persisted session",
			zap.Error(err),
		)
	}
	s.announce(ctx, "logout")
	s.publishEvent(ctx, constvars.SessionEventForcedLogout, user)

	// user was non-nil above, so this branch runs at most once per session.
	if s.redirect != nil {
		s.redirect(s.InternalConfig.App.LoginRoute)
	}
}

func (s *sessionStore) StartWatch(ctx context.Context) (func(), error) {
	// Hydrate from whatever a previous instance left behind, exactly like a
	// freshly opened tab reading localStorage.
	s.refreshFromStorage(ctx)

	signals, closeSubscription := s.Storage.Subscribe(ctx, constvars.SessionChangedChannel)

	go func() {
		for payload := range signals {
			var signal changeSignal
			err := json.Unmarshal([]byte(payload), &signal)
			if err != nil {
				// Fail closed: an unreadable signal means the session can no
				// longer be trusted.
				s.Log.Warn("sessionStore.StartWatch unreadable change signal, clearing session",
					zap.Error(err),
				)
				s.clearInMemory()
				continue
			}
			if signal.Instance == s.InstanceID {
				continue
			}
			s.Log.Debug("sessionStore.StartWatch remote session change",
				zap.String("action", signal.Action),
				zap.String("remote_instance", signal.Instance),
			)
			s.refreshFromStorage(ctx)
		}
	}()

	return func() {
		err := closeSubscription()
		if err != nil {
			s.Log.Warn("sessionStore.StartWatch failed closing subscription",
				zap.Error(err),
			)
		}
	}, nil
}

// refreshFromStorage replaces the in-memory session with the persisted one.
// Any missing or unparseable piece clears the session (fail closed), and a
// profile that no longer matches the user does too.
func (s *sessionStore) refreshFromStorage(ctx context.Context) {
	userData, err := s.Storage.Get(ctx, constvars.StorageUserKey)
	if err != nil || userData == "" {
		s.clearInMemory()
		return
	}

	user := new(models.User)
	if err := json.Unmarshal([]byte(userData), user); err != nil {
		s.Log.Warn("sessionStore.refreshFromStorage unparseable user, clearing session",
			zap.Error(err),
		)
		s.clearInMemory()
		return
	}

	profile := user.MinimalProfile()
	profileData, err := s.Storage.Get(ctx, constvars.StorageProfileKey)
	if err == nil && profileData != "" {
		persisted := new(models.Profile)
		if err := json.Unmarshal([]byte(profileData), persisted); err != nil {
			s.clearInMemory()
			return
		}
		if !persisted.Matches(user) {
			s.Log.Warn("sessionStore.refreshFromStorage identity divergence, clearing session")
			s.clearInMemory()
			return
		}
		profile = persisted
	}

	s.mu.Lock()
	s.user = user
	s.profile = profile
	s.mu.Unlock()
}

func (s *sessionStore) clearInMemory() {
	s.mu.Lock()
	s.user = nil
	s.profile = nil
	s.mu.Unlock()
}

func (s *sessionStore) persist(ctx context.Context, user *models.User, profile *models.Profile) error {
	err := s.Storage.Set(ctx, constvars.StorageUserKey, user, s.sessionTTL())
	if err != nil {
		return err
	}
	return s.Storage.Set(ctx, constvars.StorageProfileKey, profile, s.sessionTTL())
}

func (s *sessionStore) announce(ctx context.Context, action string) {
	err := s.Storage.Publish(ctx, constvars.SessionChangedChannel, changeSignal{
		Instance: s.InstanceID,
		Action:   action,
	})
	if err != nil {
		s.Log.Warn("sessionStore failed announcing session change",
			zap.Error(err),
		)
	}
}

func (s *sessionStore) publishEvent(ctx context.Context, event string, user *models.User) {
	if s.Events == nil {
		return
	}
	err := s.Events.PublishSessionEvent(ctx, event, user)
	if err != nil {
		s.Log.Warn("sessionStore failed publishing session event",
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func (s *sessionStore) sessionTTL() time.Duration {
	return time.Duration(s.InternalConfig.API.SessionTTLInHours) * time.Hour
}
