package npmkit

import "go.uber.org/zap"

type zapObserver struct {
	logger *zap.Logger
}

// NewZapObserver returns an Observer that logs every cache event to logger
// at debug level. It is safe for concurrent use.
func NewZapObserver(logger *zap.Logger) Observer {
	return &zapObserver{logger: logger}
}

func (o *zapObserver) On(eventData EventData) {
	o.logger.Debug("memoize cache event",
		zap.Stringer("event", eventData.Event),
		zap.String("key", eventData.Key),
	)
}
