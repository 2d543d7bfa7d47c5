// Package openai implements the ai.Embedder interface against
// OpenAI-compatible embedding APIs via langchaingo. It works with the hosted
// OpenAI service as well as local compatible servers (Ollama, vLLM, LocalAI).
package openai
