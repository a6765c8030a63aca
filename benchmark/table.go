/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package benchmark

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable renders one row per sweep result. Failed cases render their
// error in place of timings.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tDISTRIBUTION\tRANDOMIZED\tDETERMINISTIC\tRATIO (DET/RAND)")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%d\t%s\terror: %v\t\t\n", r.Size, r.Distribution, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%v\t%v\t%.2f\n", r.Size, r.Distribution, r.Randomized, r.Deterministic, r.Ratio)
	}
	return tw.Flush()
}
