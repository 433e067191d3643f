package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/service"
	"zephyr/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionContextFactory opens session contexts wired to the auth usecase, the event source and the profile mirror,
// and keeps the open ones of each browser so requests from that browser can reach them.
type sessionContextFactory struct {
	auth   usecase.AuthUsecase
	events service.AuthEventSource
	mirror service.ProfileMirror
	logger *slog.Logger

	mu   sync.Mutex
	open map[string][]*sessionContext
}

// SessionContextFactoryParams holds dependencies for sessionContextFactory, injected by Fx
type SessionContextFactoryParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Events service.AuthEventSource
	Mirror service.ProfileMirror
	Logger *slog.Logger
}

// NewSessionContextFactory is the constructor for sessionContextFactory.
func NewSessionContextFactory(params SessionContextFactoryParams) usecase.SessionContextFactory {
	return &sessionContextFactory{
		auth:   params.Auth,
		events: params.Events,
		mirror: params.Mirror,
		logger: params.Logger,
		open:   make(map[string][]*sessionContext),
	}
}

// Open starts in Loading, runs the session check in the background and follows the browser's
// auth events, plus those of the session owner, until Close.
func (f *sessionContextFactory) Open(clientID string, session *entity.Session) usecase.SessionContext {
	ctx, cancel := context.WithCancel(context.Background())

	sc := &sessionContext{
		clientID:     clientID,
		auth:         f.auth,
		mirror:       f.mirror,
		logger:       f.logger,
		subscription: f.events.Subscribe(clientID, ownerOf(session)),
		session:      session,
		cancel:       cancel,
		done:         make(chan struct{}),
		subs:         make(map[int]chan entity.AuthState),
	}
	sc.release = func() { f.release(sc) }

	var mirrored *entity.UserProfile
	if owner := ownerOf(session); owner != uuid.Nil {
		mirrored = f.mirror.Get(ctx, owner)
	}
	sc.state = entity.LoadingState(mirrored)

	if clientID != "" {
		f.mu.Lock()
		f.open[clientID] = append(f.open[clientID], sc)
		f.mu.Unlock()
	}

	go sc.run(ctx)

	return sc
}

func (f *sessionContextFactory) Lookup(clientID string) []usecase.SessionContext {
	if clientID == "" {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	found := make([]usecase.SessionContext, 0, len(f.open[clientID]))
	for _, sc := range f.open[clientID] {
		found = append(found, sc)
	}

	return found
}

func (f *sessionContextFactory) release(sc *sessionContext) {
	if sc.clientID == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	remaining := slices.DeleteFunc(f.open[sc.clientID], func(open *sessionContext) bool { return open == sc })
	if len(remaining) == 0 {
		delete(f.open, sc.clientID)

		return
	}
	f.open[sc.clientID] = remaining
}

func ownerOf(session *entity.Session) uuid.UUID {
	if session == nil || session.User == nil {
		return uuid.Nil
	}

	return session.User.ID
}

type sessionContext struct {
	clientID     string
	auth         usecase.AuthUsecase
	mirror       service.ProfileMirror
	logger       *slog.Logger
	subscription service.AuthEventSubscription
	cancel       context.CancelFunc
	release      func()
	done         chan struct{}
	closeOnce    sync.Once

	mu      sync.Mutex
	session *entity.Session
	state   entity.AuthState
	subs    map[int]chan entity.AuthState
	nextSub int
	closed  bool
}

// run performs the initial check, then re-derives the state from every auth event.
func (sc *sessionContext) run(ctx context.Context) {
	defer close(sc.done)

	sc.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sc.subscription.Events():
			if !ok {
				return
			}
			sc.handleEvent(ctx, event)
		}
	}
}

func (sc *sessionContext) handleEvent(ctx context.Context, event entity.AuthEvent) {
	own := event.FromClient(sc.clientID)
	sc.logger.Debug("Session context received auth event",
		slog.String("type", string(event.Type)),
		slog.Any("userID", event.UserID),
		slog.Bool("ownClient", own),
	)

	// Another browser of the same user: its tokens are not ours, but our session may have ended with its change.
	if !own {
		sc.check(ctx)

		return
	}

	sc.adopt(event.Session)
	if event.Session == nil {
		sc.mirror.Delete(ctx, event.UserID)
		sc.setState(entity.AnonymousState())

		return
	}

	sc.check(ctx)
}

// adopt makes session the tracked one and follows its owner's events.
func (sc *sessionContext) adopt(session *entity.Session) {
	sc.mu.Lock()
	sc.session = session
	sc.mu.Unlock()

	sc.subscription.Follow(ownerOf(session))
}

// check runs the authoritative session check for the tracked session.
func (sc *sessionContext) check(ctx context.Context) entity.AuthState {
	sc.mu.Lock()
	session := sc.session
	sc.mu.Unlock()

	state := sc.auth.ResolveState(ctx, session)
	if state.Authenticated() && state.Profile != nil {
		sc.mirror.Put(ctx, state.Profile)
	}
	sc.setState(state)

	return state
}

func (sc *sessionContext) State() entity.AuthState {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return sc.state
}

func (sc *sessionContext) Subscribe() (<-chan entity.AuthState, func()) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	ch := make(chan entity.AuthState, 1)
	if sc.closed {
		close(ch)

		return ch, func() {}
	}

	id := sc.nextSub
	sc.nextSub++
	sc.subs[id] = ch
	ch <- sc.state

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			sc.mu.Lock()
			defer sc.mu.Unlock()

			if sub, ok := sc.subs[id]; ok {
				delete(sc.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

func (sc *sessionContext) Refresh(ctx context.Context) entity.AuthState {
	sc.mu.Lock()
	loading := sc.state
	loading.Status = entity.AuthStatusLoading
	sc.mu.Unlock()
	sc.setState(loading)

	return sc.check(ctx)
}

// Logout signs out and forces the anonymous state without waiting for the SIGNED_OUT event.
func (sc *sessionContext) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		sc.mu.Lock()
		session = sc.session
		sc.mu.Unlock()
	}

	if err := sc.auth.Logout(ctx, session); err != nil {
		sc.logger.Warn("Error signing out", slog.Any("error", err))

		return err
	}

	sc.adopt(nil)
	if owner := ownerOf(session); owner != uuid.Nil {
		sc.mirror.Delete(ctx, owner)
	}
	sc.setState(entity.AnonymousState())

	return nil
}

func (sc *sessionContext) Close() {
	sc.closeOnce.Do(func() {
		sc.release()
		sc.cancel()
		sc.subscription.Cancel()
		<-sc.done

		sc.mu.Lock()
		defer sc.mu.Unlock()

		sc.closed = true
		for id, ch := range sc.subs {
			delete(sc.subs, id)
			close(ch)
		}
	})
}

// setState stores the state and hands it to every subscriber, replacing any value they have not read yet.
func (sc *sessionContext) setState(state entity.AuthState) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.closed {
		return
	}

	sc.state = state
	for _, ch := range sc.subs {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}
