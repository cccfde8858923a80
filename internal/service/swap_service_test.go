package service

import (
	"context"
	"errors"
	"testing"

	"sim-registry/internal/core/ports/mocks"
	"sim-registry/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type swapTestDeps struct {
	svc       *swapService
	repo      *mocks.MockBindingRepository
	verifySvc *mocks.MockVerificationService
	ctrl      *gomock.Controller
}

func setupSwapService(t *testing.T) *swapTestDeps {
	ctrl := gomock.NewController(t)
	d := &swapTestDeps{
		repo:      mocks.NewMockBindingRepository(ctrl),
		verifySvc: mocks.NewMockVerificationService(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewSwapService(d.repo, d.verifySvc, zerolog.Nop()).(*swapService)
	return d
}

func TestSwapService_Swap_Success(t *testing.T) {
	d := setupSwapService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	stored := storedBinding("+10000000001", annLee())
	oldID := stored.BindingID.ID

	d.verifySvc.EXPECT().Verify(ctx, "+10000000001", annLee()).Return(stored, nil)

	var rotatedTo string
	d.repo.EXPECT().UpdateBindingID(ctx, "+10000000001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, newID string) error {
			rotatedTo = newID
			return nil
		})

	result, err := d.svc.Swap(ctx, "+10000000001", annLee())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "+10000000001", result.PhoneNumber)
	assert.Equal(t, rotatedTo, result.NewBindingID)
	assert.NotEqual(t, oldID, result.NewBindingID)
}

func TestSwapService_Swap_VerificationFailure_NoMutation(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr *apperror.AppError
	}{
		{"not registered", apperror.ErrNotRegistered()},
		{"identity mismatch", apperror.ErrIdentityMismatch()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupSwapService(t)
			defer d.ctrl.Finish()
			ctx := context.Background()

			d.verifySvc.EXPECT().Verify(ctx, "+10000000001", gomock.Any()).Return(nil, tt.verifyErr)
			// No UpdateBindingID call: a failed verification never mutates the binding.

			result, err := d.svc.Swap(ctx, "+10000000001", annLee())
			assert.Nil(t, result)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.verifyErr.Code, appErr.Code)
		})
	}
}

func TestSwapService_Swap_UpdateFailure(t *testing.T) {
	d := setupSwapService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.verifySvc.EXPECT().Verify(ctx, "+10000000001", annLee()).Return(storedBinding("+10000000001", annLee()), nil)

	underlying := errors.New("write conflict")
	d.repo.EXPECT().UpdateBindingID(ctx, "+10000000001", gomock.Any()).Return(underlying)

	result, err := d.svc.Swap(ctx, "+10000000001", annLee())
	assert.Nil(t, result)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SWP_001", appErr.Code)
	assert.True(t, errors.Is(err, underlying))
}

func TestSwapService_Swap_RotatesToFreshToken(t *testing.T) {
	d := setupSwapService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		stored := storedBinding("+10000000001", annLee())
		d.verifySvc.EXPECT().Verify(ctx, "+10000000001", annLee()).Return(stored, nil)
		d.repo.EXPECT().UpdateBindingID(ctx, "+10000000001", gomock.Any()).Return(nil)

		result, err := d.svc.Swap(ctx, "+10000000001", annLee())
		require.NoError(t, err)
		assert.False(t, seen[result.NewBindingID], "token reused across swaps")
		seen[result.NewBindingID] = true
	}
}
