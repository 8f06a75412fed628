package initializers

import (
	"context"

	"habilitation-backend/config"
	"habilitation-backend/fiberlog"
	accounthandler "habilitation-backend/lib/account"
	applicationhandler "habilitation-backend/lib/application"
	agencyhandler "habilitation-backend/lib/dicts/agency"
	departmenthandler "habilitation-backend/lib/dicts/department"
	subsidiaryhandler "habilitation-backend/lib/dicts/subsidiary"
	xlsexport "habilitation-backend/lib/export/xls"
	"habilitation-backend/lib/habilitation"
	"habilitation-backend/lib/notify"
	profilehandler "habilitation-backend/lib/profile"
	"habilitation-backend/lib/rbac"
	"habilitation-backend/lib/roleauthority"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	rbac.NewHandler()
	roleauthority.NewHandler()
	accounthandler.NewHandler()
	profilehandler.NewHandler()
	applicationhandler.NewHandler()
	departmenthandler.NewHandler()
	agencyhandler.NewHandler()
	subsidiaryhandler.NewHandler()
	notify.NewHandler()
	xlsexport.NewHandler()
	habilitation.NewHandler()
}
