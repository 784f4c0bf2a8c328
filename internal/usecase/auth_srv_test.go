package usecase

import (
	"context"
	"testing"

	"glassfinder/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpNormalizesEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.auth.SignUp(ctx, &request.SignUpRequest{
		Email:    "  Alice@Example.COM ",
		Password: "secret99",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.Verified)
	assert.False(t, user.Linked)

	stored, err := env.users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.VerificationCode)
	assert.NotEqual(t, "secret99", stored.PasswordHash)
}

func TestSignUpDuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.SignUp(ctx, &request.SignUpRequest{Email: "bob@example.com", Password: "secret99"})
	require.NoError(t, err)

	// Same address in a different case is still taken.
	_, err = env.auth.SignUp(ctx, &request.SignUpRequest{Email: "BOB@example.com", Password: "other999"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInChecksCredentialsAndVerification(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.SignUp(ctx, &request.SignUpRequest{Email: "carol@example.com", Password: "secret99"})
	require.NoError(t, err)

	// Unknown email and wrong password produce the same error.
	_, err = env.auth.SignIn(ctx, &request.SignInRequest{Email: "nobody@example.com", Password: "secret99"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.SignIn(ctx, &request.SignInRequest{Email: "carol@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Correct credentials on an unverified account are refused.
	_, err = env.auth.SignIn(ctx, &request.SignInRequest{Email: "carol@example.com", Password: "secret99"})
	assert.ErrorIs(t, err, ErrUnverified)
}

func TestVerifyFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	signedUp, err := env.auth.SignUp(ctx, &request.SignUpRequest{Email: "dave@example.com", Password: "secret99"})
	require.NoError(t, err)

	stored, err := env.users.FindByEmail(ctx, "dave@example.com")
	require.NoError(t, err)
	code := *stored.VerificationCode

	// A wrong code is rejected.
	_, err = env.auth.Verify(ctx, stored.ID, "not-the-code")
	assert.ErrorIs(t, err, ErrCodeMismatch)

	// The right code verifies and retires the code.
	verified, err := env.auth.Verify(ctx, stored.ID, code)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Equal(t, signedUp.ID, verified.ID)

	after, err := env.users.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Nil(t, after.VerificationCode)

	// The code is spent; a second attempt conflicts, even with the
	// code that just worked.
	_, err = env.auth.Verify(ctx, stored.ID, code)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
	_, err = env.auth.Verify(ctx, stored.ID, "anything")
	assert.ErrorIs(t, err, ErrAlreadyVerified)

	// Sign-in now works.
	auth, err := env.auth.SignIn(ctx, &request.SignInRequest{Email: "dave@example.com", Password: "secret99"})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
}

func TestResendVerificationRotatesCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.SignUp(ctx, &request.SignUpRequest{Email: "erin@example.com", Password: "secret99"})
	require.NoError(t, err)

	before, err := env.users.FindByEmail(ctx, "erin@example.com")
	require.NoError(t, err)
	oldCode := *before.VerificationCode

	require.NoError(t, env.auth.ResendVerification(ctx, "erin@example.com"))

	after, err := env.users.FindByEmail(ctx, "erin@example.com")
	require.NoError(t, err)
	newCode := *after.VerificationCode
	assert.NotEqual(t, oldCode, newCode)

	// The old code no longer verifies.
	_, err = env.auth.Verify(ctx, after.ID, oldCode)
	assert.ErrorIs(t, err, ErrCodeMismatch)

	_, err = env.auth.Verify(ctx, after.ID, newCode)
	assert.NoError(t, err)
}

func TestResendVerificationVerifiedAccount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.seedUser("frank@example.com")

	err := env.auth.ResendVerification(ctx, user.Email)
	assert.ErrorIs(t, err, ErrAlreadyVerified)

	err = env.auth.ResendVerification(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdatePassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.SignUp(ctx, &request.SignUpRequest{Email: "grace@example.com", Password: "original9"})
	require.NoError(t, err)

	stored, err := env.users.FindByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	_, err = env.auth.Verify(ctx, stored.ID, *stored.VerificationCode)
	require.NoError(t, err)

	// The current password gates the change.
	err = env.auth.UpdatePassword(ctx, stored.ID, &request.UpdatePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "changed99",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = env.auth.UpdatePassword(ctx, stored.ID, &request.UpdatePasswordRequest{
		CurrentPassword: "original9",
		NewPassword:     "changed99",
	})
	require.NoError(t, err)

	// Only the new password signs in.
	_, err = env.auth.SignIn(ctx, &request.SignInRequest{Email: "grace@example.com", Password: "original9"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.SignIn(ctx, &request.SignInRequest{Email: "grace@example.com", Password: "changed99"})
	assert.NoError(t, err)
}
