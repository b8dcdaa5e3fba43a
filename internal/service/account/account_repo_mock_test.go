package account

import (
	"context"
	"sync"
	
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	AppendLinkFunc func(ctx context.Context, bsnid string, kind domain.LinkKind, url string) (*domain.Account, error)
	CreateFunc     func(ctx context.Context, a *domain.Account) (*domain.Account, error)
	ExistsFunc     func(ctx context.Context, bsnid string) (bool, error)
	GetByBSNIDFunc func(ctx context.Context, bsnid string) (*domain.Account, error)
	SearchFunc     func(ctx context.Context, term string) ([]*domain.Account, error)

	calls struct {
		AppendLink []struct {
			Ctx   context.Context
			Bsnid string
			Kind  domain.LinkKind
			Url   string
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Account
		}
		Exists []struct {
			Ctx   context.Context
			Bsnid string
		}
		GetByBSNID []struct {
			Ctx   context.Context
			Bsnid string
		}
		Search []struct {
			Ctx  context.Context
			Term string
		}
	}
	lockAppendLink sync.RWMutex
	lockCreate     sync.RWMutex
	lockExists     sync.RWMutex
	lockGetByBSNID sync.RWMutex
	lockSearch     sync.RWMutex
}

func (mock *accountRepoMock) AppendLink(ctx context.Context, bsnid string, kind domain.LinkKind, url string) (*domain.Account, error) {
	if mock.AppendLinkFunc == nil {
		panic("accountRepoMock.AppendLinkFunc: method is nil but accountRepo.AppendLink was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Bsnid string
		Kind  domain.LinkKind
		Url   string
	}{
		Ctx:   ctx,
		Bsnid: bsnid,
		Kind:  kind,
		Url:   url,
	}
	mock.lockAppendLink.Lock()
	mock.calls.AppendLink = append(mock.calls.AppendLink, callInfo)
	mock.lockAppendLink.Unlock()
	return mock.AppendLinkFunc(ctx, bsnid, kind, url)
}

func (mock *accountRepoMock) AppendLinkCalls() []struct {
	Ctx   context.Context
	Bsnid string
	Kind  domain.LinkKind
	Url   string
} {
	var calls []struct {
		Ctx   context.Context
		Bsnid string
		Kind  domain.LinkKind
		Url   string
	}
	mock.lockAppendLink.RLock()
	calls = mock.calls.AppendLink
	mock.lockAppendLink.RUnlock()
	return calls
}

func (mock *accountRepoMock) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Account
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Account
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Account
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) Exists(ctx context.Context, bsnid string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("accountRepoMock.ExistsFunc: method is nil but accountRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Bsnid string
	}{
		Ctx:   ctx,
		Bsnid: bsnid,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, bsnid)
}

func (mock *accountRepoMock) ExistsCalls() []struct {
	Ctx   context.Context
	Bsnid string
} {
	var calls []struct {
		Ctx   context.Context
		Bsnid string
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByBSNID(ctx context.Context, bsnid string) (*domain.Account, error) {
	if mock.GetByBSNIDFunc == nil {
		panic("accountRepoMock.GetByBSNIDFunc: method is nil but accountRepo.GetByBSNID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Bsnid string
	}{
		Ctx:   ctx,
		Bsnid: bsnid,
	}
	mock.lockGetByBSNID.Lock()
	mock.calls.GetByBSNID = append(mock.calls.GetByBSNID, callInfo)
	mock.lockGetByBSNID.Unlock()
	return mock.GetByBSNIDFunc(ctx, bsnid)
}

func (mock *accountRepoMock) GetByBSNIDCalls() []struct {
	Ctx   context.Context
	Bsnid string
} {
	var calls []struct {
		Ctx   context.Context
		Bsnid string
	}
	mock.lockGetByBSNID.RLock()
	calls = mock.calls.GetByBSNID
	mock.lockGetByBSNID.RUnlock()
	return calls
}

func (mock *accountRepoMock) Search(ctx context.Context, term string) ([]*domain.Account, error) {
	if mock.SearchFunc == nil {
		panic("accountRepoMock.SearchFunc: method is nil but accountRepo.Search was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{
		Ctx:  ctx,
		Term: term,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, term)
}

func (mock *accountRepoMock) SearchCalls() []struct {
	Ctx  context.Context
	Term string
} {
	var calls []struct {
		Ctx  context.Context
		Term string
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
