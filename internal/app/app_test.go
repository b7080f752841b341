package app

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/mocks"
	"go.uber.org/mock/gomock"
)

func TestWarnUnconfigured(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctrl := gomock.NewController(t)
	metaPlatform := mocks.NewMockMetaIntegrator(ctrl)
	googlePlatform := mocks.NewMockGoogleIntegrator(ctrl)

	metaPlatform.EXPECT().Configured().Return(false)
	googlePlatform.EXPECT().Configured().Return(true)

	warnUnconfigured(metaPlatform, googlePlatform)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "conexão de contas do Meta indisponível")
	assert.NotContains(t, entry.Message, "não serão trocados")
}
