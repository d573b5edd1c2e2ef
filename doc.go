// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package swiftcompile parses Swift source files into syntax trees.
//
// The main entry point is [Compiler], which parses any number of files in
// parallel. Each file goes through three stages:
//  1. Tokenizing, through a [tokencache.Cache] so that unchanged files are
//     not lexed again.
//  2. Parsing the tokens with a [parser.Grammar].
//  3. Collecting the result, or the first error, into a [File].
//
// # Resolvers
//
// A [Resolver] is how the compiler finds its inputs. It may answer with
// source bytes, with tokens that were already produced, or with a finished
// syntax tree, and the compiler skips the stages that are already done.
// [SourceResolver] reads files from disk or any other accessor, relative to
// a list of search paths, and [CompositeResolver] tries several resolvers in
// order.
//
// # Errors
//
// The first error in a file ends that file's parse. Positioned errors are
// passed to the [reporter.Reporter]; the default one stops the whole run on
// the first error, but a custom one may choose to keep going with the other
// files. Errors without a position, such as a file that cannot be read,
// always stop the run.
//
// # Configuration
//
// Tools can describe a run in a YAML or TOML file, loaded with [LoadConfig].
package swiftcompile
