package quote

// Quote is one motivational line shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "You are never too old to set another goal or to dream a new dream.", Author: "C.S. Lewis"},
	{Text: "Education is the most powerful weapon which you can use to change the world.", Author: "Nelson Mandela"},
	{Text: "The more that you read, the more things you will know.", Author: "Dr. Seuss"},
	{Text: "In the middle of difficulty lies opportunity.", Author: "Albert Einstein"},
	{Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	{Text: "The mind is everything. What you think you become.", Author: "Buddha"},
	{Text: "Strive not to be a success, but rather to be of value.", Author: "Albert Einstein"},
	{Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins"},
	{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair"},
	{Text: "Success usually comes to those who are too busy to be looking for it.", Author: "Henry David Thoreau"},
	{Text: "Don't be afraid to give up the good to go for the great.", Author: "John D. Rockefeller"},
	{Text: "I find that the harder I work, the more luck I seem to have.", Author: "Thomas Jefferson"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "If you really look closely, most overnight successes took a long time.", Author: "Steve Jobs"},
	{Text: "The only limit to our realization of tomorrow is our doubts of today.", Author: "Franklin D. Roosevelt"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{Text: "Quality is not an act, it is a habit.", Author: "Aristotle"},
	{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
	{Text: "Your limitation—it's only your imagination.", Author: "Unknown"},
	{Text: "Push yourself, because no one else is going to do it for you.", Author: "Unknown"},
	{Text: "Great things never come from comfort zones.", Author: "Unknown"},
	{Text: "Dream it. Wish it. Do it.", Author: "Unknown"},
	{Text: "Success doesn't just find you. You have to go out and get it.", Author: "Unknown"},
	{Text: "The harder you work for something, the greater you'll feel when you achieve it.", Author: "Unknown"},
	{Text: "Dream bigger. Do bigger.", Author: "Unknown"},
	{Text: "Don't stop when you're tired. Stop when you're done.", Author: "Unknown"},
	{Text: "Wake up with determination. Go to bed with satisfaction.", Author: "Unknown"},
	{Text: "Do something today that your future self will thank you for.", Author: "Sean Patrick Flanery"},
	{Text: "Little things make big days.", Author: "Unknown"},
	{Text: "It's going to be hard, but hard does not mean impossible.", Author: "Unknown"},
	{Text: "Don't wait for opportunity. Create it.", Author: "Unknown"},
	{Text: "Sometimes we're tested not to show our weaknesses, but to discover our strengths.", Author: "Unknown"},
	{Text: "The key to success is to focus on goals, not obstacles.", Author: "Unknown"},
	{Text: "Dream it. Believe it. Build it.", Author: "Unknown"},
	{Text: "A year from now you may wish you had started today.", Author: "Karen Lamb"},
	{Text: "Knowledge is power.", Author: "Francis Bacon"},
	{Text: "Learn as if you will live forever, live like you will die tomorrow.", Author: "Mahatma Gandhi"},
	{Text: "Stay hungry, stay foolish.", Author: "Steve Jobs"},
	{Text: "The beautiful thing about learning is that nobody can take it away from you.", Author: "B.B. King"},
	{Text: "Live as if you were to die tomorrow. Learn as if you were to live forever.", Author: "Mahatma Gandhi"},
	{Text: "Tell me and I forget. Teach me and I remember. Involve me and I learn.", Author: "Benjamin Franklin"},
	{Text: "The capacity to learn is a gift; the ability to learn is a skill; the willingness to learn is a choice.", Author: "Brian Herbert"},
	{Text: "Anyone who stops learning is old, whether at twenty or eighty.", Author: "Henry Ford"},
	{Text: "The expert in anything was once a beginner.", Author: "Helen Hayes"},
	{Text: "Learning never exhausts the mind.", Author: "Leonardo da Vinci"},
	{Text: "The roots of education are bitter, but the fruit is sweet.", Author: "Aristotle"},
	{Text: "Education is not preparation for life; education is life itself.", Author: "John Dewey"},
	{Text: "The more I read, the more I acquire, the more certain I am that I know nothing.", Author: "Voltaire"},
	{Text: "An investment in knowledge pays the best interest.", Author: "Benjamin Franklin"},
	{Text: "The purpose of learning is growth, and our minds, unlike our bodies, can continue growing.", Author: "Mortimer Adler"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "What we learn with pleasure we never forget.", Author: "Alfred Mercier"},
	{Text: "Study hard what interests you the most in the most undisciplined, irreverent way possible.", Author: "Richard Feynman"},
	{Text: "The only person who is educated is the one who has learned how to learn.", Author: "Carl Rogers"},
	{Text: "Education is the passport to the future, for tomorrow belongs to those who prepare for it today.", Author: "Malcolm X"},
	{Text: "Develop a passion for learning. If you do, you will never cease to grow.", Author: "Anthony J. D'Angelo"},
	{Text: "The beautiful thing about learning is nobody can take it away from you.", Author: "B.B. King"},
	{Text: "I am still learning.", Author: "Michelangelo"},
	{Text: "The only true wisdom is in knowing you know nothing.", Author: "Socrates"},
	{Text: "Curiosity is the wick in the candle of learning.", Author: "William Arthur Ward"},
	{Text: "Every student can learn, just not on the same day, or the same way.", Author: "George Evans"},
	{Text: "Learning is not attained by chance, it must be sought for with ardor and attended to with diligence.", Author: "Abigail Adams"},
	{Text: "I have no special talents. I am only passionately curious.", Author: "Albert Einstein"},
	{Text: "Education is the kindling of a flame, not the filling of a vessel.", Author: "Socrates"},
	{Text: "The mind is not a vessel to be filled but a fire to be kindled.", Author: "Plutarch"},
	{Text: "You learn something every day if you pay attention.", Author: "Ray LeBlond"},
	{Text: "Never let formal education get in the way of your learning.", Author: "Mark Twain"},
	{Text: "The greatest glory in living lies not in never falling, but in rising every time we fall.", Author: "Nelson Mandela"},
	{Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon"},
	{Text: "Get busy living or get busy dying.", Author: "Stephen King"},
	{Text: "You only live once, but if you do it right, once is enough.", Author: "Mae West"},
	{Text: "Many of life's failures are people who did not realize how close they were to success when they gave up.", Author: "Thomas Edison"},
	{Text: "If life were predictable it would cease to be life, and be without flavor.", Author: "Eleanor Roosevelt"},
	{Text: "Life is really simple, but we insist on making it complicated.", Author: "Confucius"},
	{Text: "Life is a succession of lessons which must be lived to be understood.", Author: "Ralph Waldo Emerson"},
	{Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs"},
	{Text: "Life is either a daring adventure or nothing at all.", Author: "Helen Keller"},
	{Text: "The purpose of our lives is to be happy.", Author: "Dalai Lama"},
	{Text: "Love the life you live. Live the life you love.", Author: "Bob Marley"},
	{Text: "In three words I can sum up everything I've learned about life: it goes on.", Author: "Robert Frost"},
	{Text: "Keep your face always toward the sunshine—and shadows will fall behind you.", Author: "Walt Whitman"},
	{Text: "Life is made of ever so many partings welded together.", Author: "Charles Dickens"},
	{Text: "Life is short, and it is up to you to make it sweet.", Author: "Sarah Louise Delany"},
	{Text: "The biggest adventure you can take is to live the life of your dreams.", Author: "Oprah Winfrey"},
	{Text: "Life is 10% what happens to us and 90% how we react to it.", Author: "Charles R. Swindoll"},
	{Text: "Be yourself; everyone else is already taken.", Author: "Oscar Wilde"},
	{Text: "Two things are infinite: the universe and human stupidity; and I'm not sure about the universe.", Author: "Albert Einstein"},
	{Text: "Be the change that you wish to see in the world.", Author: "Mahatma Gandhi"},
	{Text: "No one can make you feel inferior without your consent.", Author: "Eleanor Roosevelt"},
	{Text: "If you tell the truth, you don't have to remember anything.", Author: "Mark Twain"},
	{Text: "A friend is someone who knows all about you and still loves you.", Author: "Elbert Hubbard"},
	{Text: "To live is the rarest thing in the world. Most people exist, that is all.", Author: "Oscar Wilde"},
	{Text: "Without music, life would be a mistake.", Author: "Friedrich Nietzsche"},
	{Text: "We accept the love we think we deserve.", Author: "Stephen Chbosky"},
}
