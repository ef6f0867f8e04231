package rollerr_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golift.io/rollerr"
	"golift.io/rollerr/filer"
	"golift.io/rollerr/mocks"
)

func TestMaxSizeFire(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockInfo := mocks.NewMockFileInfo(mockCtrl)
	trigger := rollerr.MaxSize{Bytes: 50}

	// Landing exactly on the threshold does not fire; strictly exceeding does.
	mockInfo.EXPECT().Size().Return(int64(50))
	assert.False(trigger.Fire(&filer.FileInfo{FileInfo: mockInfo}, time.Now()))

	mockInfo.EXPECT().Size().Return(int64(51))
	assert.True(trigger.Fire(&filer.FileInfo{FileInfo: mockInfo}, time.Now()))
}

func TestMaxAgeFire(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	created := time.Now()
	info := &filer.FileInfo{CreateTime: created}
	trigger := rollerr.MaxAge{Limit: time.Hour, IfUnknown: rollerr.RotateNever}

	assert.False(trigger.Fire(info, created.Add(time.Hour)), "exactly at the limit must not fire")
	assert.True(trigger.Fire(info, created.Add(time.Hour+time.Nanosecond)))

	// No creation time stamp: the explicit fallback decides.
	unknown := &filer.FileInfo{}
	assert.False(trigger.Fire(unknown, created.Add(24*time.Hour)))

	trigger.IfUnknown = rollerr.RotateAlways
	assert.True(trigger.Fire(unknown, created))
}

func TestNever(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.False(rollerr.Never{}.Fire(&filer.FileInfo{}, time.Now()))
	assert.NoError(rollerr.Never{}.Check())
}

func TestTriggerCheck(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.NoError(rollerr.MaxSize{Bytes: 1}.Check())
	assert.NoError(rollerr.MaxAge{Limit: time.Minute, IfUnknown: rollerr.RotateNever}.Check())
	assert.NoError(rollerr.MaxAge{Limit: time.Minute, IfUnknown: rollerr.RotateAlways}.Check())

	assert.ErrorIs(rollerr.MaxSize{}.Check(), rollerr.ErrBadTrigger)
	assert.ErrorIs(rollerr.MaxSize{Bytes: -5}.Check(), rollerr.ErrBadTrigger)
	assert.ErrorIs(rollerr.MaxAge{IfUnknown: rollerr.RotateNever}.Check(), rollerr.ErrBadTrigger)
	assert.ErrorIs(rollerr.MaxAge{Limit: time.Minute}.Check(), rollerr.ErrBadTrigger,
		"an age trigger without an explicit unknown-age fallback must be rejected")
}
