// Package checkin orchestrates the daily check-in run: validate the
// stored credential, call the check-in endpoint, interpret the platform
// error code and report the outcome.
package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/keyasu/juejin-auto/internal/juejin"
)

// codeAlreadyCheckedIn is returned by the platform when today's
// check-in already happened.
const codeAlreadyCheckedIn = 165001

// API is the slice of the platform client the workflow needs.
type API interface {
	UserInfo(ctx context.Context) (*juejin.Reply, error)
	CheckIn(ctx context.Context) (*juejin.Reply, error)
}

// Notifier delivers the outcome to a human. Implementations never
// return an error; delivery problems are theirs to log.
type Notifier interface {
	Send(ctx context.Context, title, body string)
}

type Service struct {
	api      API
	notifier Notifier
	log      *slog.Logger
}

func NewService(api API, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		api:      api,
		notifier: notifier,
		log:      log,
	}
}

// Run executes the workflow under a guard: a panic anywhere below
// becomes the internal-error outcome instead of crashing the process,
// and the end-of-run line is logged on every exit path.
func (s *Service) Run(ctx context.Context) (out Outcome) {
	defer s.log.Info("check-in run finished")
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("check-in workflow panicked", "panic", fmt.Sprint(r))
			out = s.conclude(ctx, Outcome{Kind: KindInternalError, Message: fmt.Sprint(r)})
		}
	}()

	return s.Execute(ctx)
}

// Execute runs the check-in state machine and returns its terminal
// outcome. Every branch logs and notifies exactly once.
func (s *Service) Execute(ctx context.Context) Outcome {
	s.log.Info("starting juejin check-in")

	if _, ok := s.ValidateCredential(ctx); !ok {
		return s.conclude(ctx, Outcome{Kind: KindInvalidCredential})
	}

	reply, err := s.api.CheckIn(ctx)
	if err != nil {
		s.log.Error("check-in request failed after all retries", "error", err)
		return s.conclude(ctx, Outcome{Kind: KindTransportFailure, Message: err.Error()})
	}

	env, err := reply.Decode()
	if err != nil {
		s.log.Error("check-in response is not valid JSON", "body", string(reply.Body))
		return s.conclude(ctx, Outcome{Kind: KindMalformedResponse, Raw: string(reply.Body)})
	}

	switch env.ErrNo {
	case 0:
		data := env.CheckInData()
		s.log.Info("check-in succeeded", "incr_point", data.IncrPoint, "sum_point", data.SumPoint)
		return s.conclude(ctx, Outcome{
			Kind:      KindSuccess,
			IncrPoint: data.IncrPoint,
			SumPoint:  data.SumPoint,
		})
	case codeAlreadyCheckedIn:
		s.log.Info("already checked in today, nothing to do")
		return s.conclude(ctx, Outcome{Kind: KindAlreadyCheckedIn})
	default:
		msg := env.ErrMsg
		if msg == "" {
			msg = "unknown"
		}
		s.log.Error("check-in rejected", "err_no", env.ErrNo, "err_msg", msg)
		return s.conclude(ctx, Outcome{Kind: KindBusinessError, Code: env.ErrNo, Message: msg})
	}
}

// ValidateCredential checks the stored cookie against the user-info
// endpoint. It fails closed: no reply, a non-200 status, an unreadable
// body or a non-zero error code all mean the credential is invalid.
func (s *Service) ValidateCredential(ctx context.Context) (string, bool) {
	s.log.Info("validating session cookie")

	reply, err := s.api.UserInfo(ctx)
	if err != nil {
		s.log.Error("cookie validation request failed", "error", err)
		return "", false
	}

	if reply.StatusCode != http.StatusOK {
		s.log.Error("cookie validation returned unexpected status", "status", reply.StatusCode)
		return "", false
	}

	env, err := reply.Decode()
	if err != nil {
		s.log.Error("cookie validation response is not valid JSON", "body", string(reply.Body))
		return "", false
	}

	if env.ErrNo != 0 {
		s.log.Error("cookie rejected", "err_no", env.ErrNo, "err_msg", env.ErrMsg)
		return "", false
	}

	user := env.User()
	s.log.Info("cookie is valid", "user", user.UserName)
	return user.UserName, true
}

func (s *Service) conclude(ctx context.Context, out Outcome) Outcome {
	s.notifier.Send(ctx, out.Title(), out.Body())
	return out
}
