package lockstore

import "github.com/redis/go-redis/v9"

// Index keys are derived inside scripts from the holder value, so the
// scripts assume a single Redis node (no cluster slot routing).

// KEYS[1] lock, KEYS[2] holder index. ARGV[1] holder, ARGV[2] ttl ms.
// 1 when the caller holds the lock afterwards, 0 when someone else does.
// An own lock is reported as held without touching its TTL.
var acquireScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur == ARGV[1] then
  return 1
end
if cur then
  return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
redis.call('SADD', KEYS[2], KEYS[1])
if redis.call('PTTL', KEYS[2]) < tonumber(ARGV[2]) then
  redis.call('PEXPIRE', KEYS[2], ARGV[2])
end
return 1
`)

// KEYS[1] lock. ARGV[1] holder index prefix.
var releaseScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then
  return 0
end
redis.call('DEL', KEYS[1])
redis.call('SREM', ARGV[1] .. cur, KEYS[1])
return 1
`)

// KEYS[1] lock, KEYS[2] holder index. ARGV[1] holder.
var releaseOwnedScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) ~= ARGV[1] then
  return 0
end
redis.call('DEL', KEYS[1])
redis.call('SREM', KEYS[2], KEYS[1])
return 1
`)

// KEYS[1] holder index. ARGV[1] holder. Returns the number of locks deleted.
var releaseAllScript = redis.NewScript(`
local n = 0
for _, k in ipairs(redis.call('SMEMBERS', KEYS[1])) do
  if redis.call('GET', k) == ARGV[1] then
    redis.call('DEL', k)
    n = n + 1
  end
end
redis.call('DEL', KEYS[1])
return n
`)

// KEYS[1] holder index. ARGV[1] holder, ARGV[2..] candidate lock keys.
// A candidate is dropped only if, at this moment, it is no longer held by
// the holder, so a re-acquire racing the prune keeps its index entry.
var pruneIndexScript = redis.NewScript(`
local n = 0
for i = 2, #ARGV do
  if redis.call('GET', ARGV[i]) ~= ARGV[1] then
    n = n + redis.call('SREM', KEYS[1], ARGV[i])
  end
end
return n
`)
