package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

var Log Logger

type Logger = *logrus.Entry
type Fields = logrus.Fields
type FieldMap = logrus.FieldMap

func init() {
	Log = logrus.WithTime(time.Now())
	logrus.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.StampMilli})
}
