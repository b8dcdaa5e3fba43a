package account

import (
	"context"
	"sync"
	
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var _ useCaseRepo = &useCaseRepoMock{}

type useCaseRepoMock struct {
	ListByAccountFunc func(ctx context.Context, bsnid string) ([]*domain.UseCase, error)

	calls struct {
		ListByAccount []struct {
			Ctx   context.Context
			Bsnid string
		}
	}
	lockListByAccount sync.RWMutex
}

func (mock *useCaseRepoMock) ListByAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error) {
	if mock.ListByAccountFunc == nil {
		panic("useCaseRepoMock.ListByAccountFunc: method is nil but useCaseRepo.ListByAccount was just called")
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

func (mock *useCaseRepoMock) ListByAccountCalls() []struct {
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
