package kzg

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "blob-kzg")
