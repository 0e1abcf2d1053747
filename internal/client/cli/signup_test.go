package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afriwallet/afriwallet/internal/client/api"
)

func TestSignUpFullFlow(t *testing.T) {
	fa := &fakeAPI{
		verifySID: "sid-42",
		loginRes:  api.LoginResult{Token: "tok-new"},
	}
	app := newTestApp(t, fa)

	stubInput(t,
		[]string{"", "08012345678", "123456"},
		[][]byte{[]byte("2468"), []byte("2468")},
	)

	require.NoError(t, app.SignUp(context.Background()))

	want := []string{
		"sendOTP +2348012345678",
		"verifyOTP +2348012345678 123456",
		"register +2348012345678 sid-42",
		"login +2348012345678",
	}
	assert.Equal(t, want, fa.calls)
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "tok-new", app.session.Token())
}

func TestSignUpRejectsShortPhone(t *testing.T) {
	fa := &fakeAPI{}
	app := newTestApp(t, fa)

	stubInput(t, []string{"", "801234"}, nil)

	require.NoError(t, app.SignUp(context.Background()))
	assert.Empty(t, fa.calls)
}

func TestSignUpRejectsWrongCodeLength(t *testing.T) {
	fa := &fakeAPI{}
	app := newTestApp(t, fa)

	stubInput(t, []string{"", "08012345678", "1234"}, nil)

	require.NoError(t, app.SignUp(context.Background()))
	assert.Equal(t, []string{"sendOTP +2348012345678"}, fa.calls)
}

func TestSignUpRejectsWeakPIN(t *testing.T) {
	tests := []struct {
		name string
		pin  string
	}{
		{name: "too short", pin: "123"},
		{name: "repeated", pin: "1111"},
		{name: "sequential", pin: "1234"},
		{name: "reverse sequential", pin: "4321"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAPI{verifySID: "sid-1"}
			app := newTestApp(t, fa)

			stubInput(t,
				[]string{"", "08012345678", "123456"},
				[][]byte{[]byte(tt.pin)},
			)

			require.NoError(t, app.SignUp(context.Background()))
			assert.NotContains(t, fa.calls, "register +2348012345678 sid-1")
		})
	}
}

func TestSignUpRejectsPINMismatch(t *testing.T) {
	fa := &fakeAPI{verifySID: "sid-1"}
	app := newTestApp(t, fa)

	stubInput(t,
		[]string{"", "08012345678", "123456"},
		[][]byte{[]byte("2468"), []byte("8642")},
	)

	require.NoError(t, app.SignUp(context.Background()))
	for _, c := range fa.calls {
		assert.NotContains(t, c, "register")
	}
}
