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

// Package cpuinfo describes the host CPU for benchmark reports.
package cpuinfo

import (
	"fmt"
	"runtime"
	"strings"
)

// Info is a snapshot of the host taken at startup.
type Info struct {
	OS       string
	Arch     string
	NumCPU   int
	MaxProcs int
	// Features lists the notable instruction-set extensions that were
	// detected, in a fixed order.
	Features []string
}

var host Info

func init() {
	host = Info{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		MaxProcs: runtime.GOMAXPROCS(0),
		Features: detectFeatures(),
	}
}

// Host returns the description of the current machine.
func Host() Info {
	return host
}

// String formats the info as a single benchmark header line, for example
// "linux/amd64 cpus=8 procs=8 features=sse4.2,avx,avx2".
func (i Info) String() string {
	features := "none"
	if len(i.Features) > 0 {
		features = strings.Join(i.Features, ",")
	}
	return fmt.Sprintf("%s/%s cpus=%d procs=%d features=%s", i.OS, i.Arch, i.NumCPU, i.MaxProcs, features)
}

// Has reports whether feature was detected.
func (i Info) Has(feature string) bool {
	for _, f := range i.Features {
		if f == feature {
			return true
		}
	}
	return false
}
