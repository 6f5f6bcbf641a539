package workinghours

import (
	"github.com/barbercloud/barbercloud/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
