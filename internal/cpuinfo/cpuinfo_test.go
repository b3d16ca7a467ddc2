// Copyright 2025 go-doublesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cpuinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHost(t *testing.T) {
	info := Host()
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Positive(t, info.NumCPU)
	assert.Positive(t, info.MaxProcs)
	if runtime.GOARCH == "arm64" {
		assert.True(t, info.Has("neon"))
	}
}

func TestString(t *testing.T) {
	info := Info{OS: "linux", Arch: "amd64", NumCPU: 8, MaxProcs: 4, Features: []string{"avx", "avx2"}}
	assert.Equal(t, "linux/amd64 cpus=8 procs=4 features=avx,avx2", info.String())
	assert.True(t, info.Has("avx2"))
	assert.False(t, info.Has("avx512f"))

	info.Features = nil
	assert.True(t, strings.HasSuffix(info.String(), "features=none"))
}
