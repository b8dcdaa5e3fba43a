package account

import (
	"context"
	"sync"
	
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var _ platformRepo = &platformRepoMock{}

type platformRepoMock struct {
	ListByAccountFunc func(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error)
	UpsertFunc        func(ctx context.Context, ps *domain.PlatformStatus) (*domain.PlatformStatus, error)

	calls struct {
		ListByAccount []struct {
			Ctx   context.Context
			Bsnid string
		}
		Upsert []struct {
			Ctx context.Context
			Ps  *domain.PlatformStatus
		}
	}
	lockListByAccount sync.RWMutex
	lockUpsert        sync.RWMutex
}

func (mock *platformRepoMock) ListByAccount(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error) {
	if mock.ListByAccountFunc == nil {
		panic("platformRepoMock.ListByAccountFunc: method is nil but platformRepo.ListByAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Bsnid string
	}{
		Ctx:   ctx,
		Bsnid: bsnid,
	}
	mock.lockListByAccount.Lock()
	mock.calls.ListByAccount = append(mock.calls.ListByAccount, callInfo)
	mock.lockListByAccount.Unlock()
	return mock.ListByAccountFunc(ctx, bsnid)
}

func (mock *platformRepoMock) ListByAccountCalls() []struct {
	Ctx   context.Context
	Bsnid string
} {
	var calls []struct {
		Ctx   context.Context
		Bsnid string
	}
	mock.lockListByAccount.RLock()
	calls = mock.calls.ListByAccount
	mock.lockListByAccount.RUnlock()
	return calls
}

func (mock *platformRepoMock) Upsert(ctx context.Context, ps *domain.PlatformStatus) (*domain.PlatformStatus, error) {
	if mock.UpsertFunc == nil {
		panic("platformRepoMock.UpsertFunc: method is nil but platformRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ps  *domain.PlatformStatus
	}{
		Ctx: ctx,
		Ps:  ps,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, ps)
}

func (mock *platformRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	Ps  *domain.PlatformStatus
} {
	var calls []struct {
		Ctx context.Context
		Ps  *domain.PlatformStatus
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
