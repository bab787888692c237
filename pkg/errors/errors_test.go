package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  Unsupported("diffbase: not supported on AppVeyor"),
			want: "[UNSUPPORTED] diffbase: not supported on AppVeyor",
		},
		{
			name: "with cause",
			err:  VCS("failed to resolve HEAD^", stderrors.New("reference not found")),
			want: "[VCS] failed to resolve HEAD^: reference not found",
		},
		{
			name: "not in CI",
			err:  NotInCI("branch: no recognized CI provider detected"),
			want: "[NOT_IN_CI] branch: no recognized CI provider detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := HostAPI("GET pulls/1: 403", nil)

	if !IsKind(err, KindHostAPI) {
		t.Error("IsKind(KindHostAPI) = false, want true")
	}
	if IsKind(err, KindVCS) {
		t.Error("IsKind(KindVCS) = true, want false")
	}
	if IsKind(nil, KindHostAPI) {
		t.Error("IsKind(nil) = true, want false")
	}
	if IsKind(stderrors.New("plain"), KindHostAPI) {
		t.Error("IsKind(plain error) = true, want false")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolving context: %w", Unsupported("pr: not a pull request build"))

	if !IsUnsupported(wrapped) {
		t.Error("IsUnsupported(wrapped) = false, want true")
	}
	if IsNotInCI(wrapped) {
		t.Error("IsNotInCI(wrapped) = true, want false")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := HostAPI("GET pulls/1 failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestUnsupportedf(t *testing.T) {
	err := Unsupportedf("diffbase undefined for event type %q", "cron")
	want := `[UNSUPPORTED] diffbase undefined for event type "cron"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
