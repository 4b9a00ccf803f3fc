package repo

import (
	"github.com/roomdesk/roomdesk/internal/pg"
	accountrepo "github.com/roomdesk/roomdesk/internal/repo/account-repo"
	agreementrepo "github.com/roomdesk/roomdesk/internal/repo/agreement-repo"
	orderrepo "github.com/roomdesk/roomdesk/internal/repo/order-repo"
	permissionrepo "github.com/roomdesk/roomdesk/internal/repo/permission-repo"
	watchrepo "github.com/roomdesk/roomdesk/internal/repo/watch-repo"
)

type Repositories struct {
	PermissionRepo *permissionrepo.Repository
	AgreementRepo  *agreementrepo.Repository
	OrderRepo      *orderrepo.Repository
	AccountRepo    *accountrepo.Repository
	WatchRepo      *watchrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PermissionRepo: permissionrepo.New(conn, txManager),
		AgreementRepo:  agreementrepo.New(conn),
		OrderRepo:      orderrepo.New(conn, txManager),
		AccountRepo:    accountrepo.New(conn, txManager),
		WatchRepo:      watchrepo.New(conn),
	}
}
